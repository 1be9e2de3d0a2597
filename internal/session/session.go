package session

import (
	"time"

	"github.com/dshills/pixelstorm/internal/engine"
	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// Session is one canvas editing session: an engine plus identity.
// All state-changing calls forward to the engine, which serializes them.
type Session struct {
	id      string
	created time.Time
	eng     *engine.Engine
}

// ID returns the session's opaque handle.
func (s *Session) ID() string {
	return s.id
}

// Created returns when the session was created.
func (s *Session) Created() time.Time {
	return s.created
}

// Engine returns the underlying paint engine.
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

// Width returns the canvas width. Constant for the session lifetime.
func (s *Session) Width() int {
	return s.eng.Width()
}

// Height returns the canvas height. Constant for the session lifetime.
func (s *Session) Height() int {
	return s.eng.Height()
}

// ImageBytes returns the current canvas as row-major RGB bytes.
func (s *Session) ImageBytes() []byte {
	return s.eng.ImageBytes()
}

// Brush paints one pixel. See engine.Engine.Brush.
func (s *Session) Brush(x, y int, c grid.Color) error {
	return s.eng.Brush(x, y, c)
}

// Undo steps back one history entry.
func (s *Session) Undo() bool {
	return s.eng.Undo()
}

// Redo steps forward one history entry.
func (s *Session) Redo() bool {
	return s.eng.Redo()
}

// BeginStroke starts a drag gesture. Called on pointer-down.
func (s *Session) BeginStroke() {
	s.eng.BeginStroke()
}

// EndStroke finishes a drag gesture. Called on pointer-up.
func (s *Session) EndStroke() {
	s.eng.EndStroke()
}
