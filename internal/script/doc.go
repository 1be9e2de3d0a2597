// Package script provides a Lua scripting host for the paint engine.
//
// Scripts drive canvas sessions through the px module:
//
//	local id = px.new(16, 16)
//	px.begin_stroke(id)
//	px.brush(id, 0, 0, 255, 0, 0)
//	px.brush(id, 1, 0, 255, 0, 0)
//	px.end_stroke(id)
//	px.undo(id)
//	local bytes = px.pixels(id) -- raw RGB string, width*height*3 bytes
//	px.close(id)
//
// The host owns one Lua state; RunFile and RunString execute scripts
// against it, optionally bounded by an execution timeout.
package script
