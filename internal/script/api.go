package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pixelstorm/internal/engine/grid"
	"github.com/dshills/pixelstorm/internal/session"
)

// PaintModule implements the px Lua API module.
type PaintModule struct {
	sessions *session.Manager
}

// NewPaintModule creates a paint module backed by the given manager.
func NewPaintModule(sessions *session.Manager) *PaintModule {
	return &PaintModule{sessions: sessions}
}

// Name returns the module name.
func (m *PaintModule) Name() string {
	return "px"
}

// Register registers the module into the Lua state.
func (m *PaintModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "new", L.NewFunction(m.new))
	L.SetField(mod, "close", L.NewFunction(m.close))
	L.SetField(mod, "width", L.NewFunction(m.width))
	L.SetField(mod, "height", L.NewFunction(m.height))
	L.SetField(mod, "pixels", L.NewFunction(m.pixels))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "brush", L.NewFunction(m.brush))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "redo", L.NewFunction(m.redo))
	L.SetField(mod, "can_undo", L.NewFunction(m.canUndo))
	L.SetField(mod, "can_redo", L.NewFunction(m.canRedo))
	L.SetField(mod, "begin_stroke", L.NewFunction(m.beginStroke))
	L.SetField(mod, "end_stroke", L.NewFunction(m.endStroke))
	L.SetField(mod, "clear", L.NewFunction(m.clear))

	L.SetGlobal("px", mod)
	return nil
}

// checkSession resolves the session handle in argument 1.
func (m *PaintModule) checkSession(L *lua.LState) *session.Session {
	id := L.CheckString(1)
	s, ok := m.sessions.Get(id)
	if !ok {
		L.RaiseError("unknown session: %s", id)
		return nil
	}
	return s
}

// checkChannel reads a 0..255 color component at the given argument index.
func checkChannel(L *lua.LState, idx int) uint8 {
	v := L.CheckInt(idx)
	if v < 0 || v > 255 {
		L.ArgError(idx, "color component must be 0-255")
	}
	return uint8(v)
}

// new(width, height) -> id
// Creates a canvas session and returns its handle.
func (m *PaintModule) new(L *lua.LState) int {
	width := L.CheckInt(1)
	height := L.CheckInt(2)

	s, err := m.sessions.Create(width, height)
	if err != nil {
		L.RaiseError("new: %v", err)
		return 0
	}

	L.Push(lua.LString(s.ID()))
	return 1
}

// close(id) -> bool
// Destroys a session. Returns whether it existed.
func (m *PaintModule) close(L *lua.LState) int {
	id := L.CheckString(1)
	L.Push(lua.LBool(m.sessions.Close(id)))
	return 1
}

// width(id) -> number
func (m *PaintModule) width(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LNumber(s.Width()))
	return 1
}

// height(id) -> number
func (m *PaintModule) height(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LNumber(s.Height()))
	return 1
}

// pixels(id) -> string
// Returns the canvas as raw row-major RGB bytes.
func (m *PaintModule) pixels(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LString(s.ImageBytes()))
	return 1
}

// get(id, x, y) -> r, g, b
func (m *PaintModule) get(L *lua.LState) int {
	s := m.checkSession(L)
	x := L.CheckInt(2)
	y := L.CheckInt(3)

	c, err := s.Engine().PixelAt(x, y)
	if err != nil {
		L.RaiseError("get: %v", err)
		return 0
	}

	L.Push(lua.LNumber(c.R))
	L.Push(lua.LNumber(c.G))
	L.Push(lua.LNumber(c.B))
	return 3
}

// brush(id, x, y, r, g, b)
// Paints one pixel as an undoable edit.
func (m *PaintModule) brush(L *lua.LState) int {
	s := m.checkSession(L)
	x := L.CheckInt(2)
	y := L.CheckInt(3)
	c := grid.Color{
		R: checkChannel(L, 4),
		G: checkChannel(L, 5),
		B: checkChannel(L, 6),
	}

	if err := s.Brush(x, y, c); err != nil {
		L.RaiseError("brush: %v", err)
		return 0
	}
	return 0
}

// undo(id) -> bool
func (m *PaintModule) undo(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LBool(s.Undo()))
	return 1
}

// redo(id) -> bool
func (m *PaintModule) redo(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LBool(s.Redo()))
	return 1
}

// can_undo(id) -> bool
func (m *PaintModule) canUndo(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LBool(s.Engine().CanUndo()))
	return 1
}

// can_redo(id) -> bool
func (m *PaintModule) canRedo(L *lua.LState) int {
	s := m.checkSession(L)
	L.Push(lua.LBool(s.Engine().CanRedo()))
	return 1
}

// begin_stroke(id)
// Starts a drag gesture; edits coalesce until end_stroke.
func (m *PaintModule) beginStroke(L *lua.LState) int {
	s := m.checkSession(L)
	s.BeginStroke()
	return 0
}

// end_stroke(id)
func (m *PaintModule) endStroke(L *lua.LState) int {
	s := m.checkSession(L)
	s.EndStroke()
	return 0
}

// clear(id)
// Repaints the canvas with its background color as one undoable edit.
func (m *PaintModule) clear(L *lua.LState) int {
	s := m.checkSession(L)
	s.Engine().Clear()
	return 0
}
