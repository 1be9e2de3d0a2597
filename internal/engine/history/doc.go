// Package history provides a linear, gesture-aware undo/redo stack.
//
// The stack holds an ordered list of immutable state values with a cursor
// marking the current one. It is generic over any value type that is
// cheap to copy; persistent values with structural sharing (such as
// grid.Grid) make retaining every entry inexpensive.
//
// # Linear history
//
// Push truncates any redo-able entries past the cursor, appends the new
// value, and advances the cursor. Undo and redo move the cursor and clamp
// at the ends; they never modify entries.
//
// # Blocks
//
// A block coalesces a burst of pushes into a single history entry, so a
// drag gesture that paints dozens of pixels undoes in one step:
//
//	stack.BeginBlock()  // pointer down
//	stack.Push(a)       // first sample: a real new entry
//	stack.Push(b)       // later samples overwrite that entry
//	stack.Push(c)
//	stack.EndBlock()    // pointer up
//
// After EndBlock the stack holds exactly one new entry whose value is c.
// Mode only gates Push; Undo and Redo ignore it.
package history
