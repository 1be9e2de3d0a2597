package engine

import (
	"sync"

	"github.com/dshills/pixelstorm/internal/engine/grid"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Color is one RGB pixel value.
	Color = grid.Color

	// Grid is an immutable canvas snapshot.
	Grid = grid.Grid
)

// Engine is the main facade for one canvas editing session.
// It combines the pixel grid with undo/redo history: brush strokes
// produce new grid versions, the history tracks them, and undo/redo move
// between them.
//
// All operations are thread-safe and can be called from multiple
// goroutines.
type Engine struct {
	mu sync.RWMutex

	hist *history.Stack[grid.Grid]

	// Canvas shape, constant for the engine's lifetime.
	width  int
	height int

	// Configuration
	background     grid.Color
	maxUndoEntries int
}

// New creates an Engine for a width x height canvas.
// Returns ErrInvalidDimension if either dimension is below 1.
func New(width, height int, opts ...Option) (*Engine, error) {
	e := &Engine{
		width:          width,
		height:         height,
		background:     grid.DefaultBackground,
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	g, err := grid.NewFilled(width, height, e.background)
	if err != nil {
		return nil, err
	}

	e.hist = history.New(g, history.WithMaxEntries(e.maxUndoEntries))
	return e, nil
}

// Width returns the canvas width in pixels.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the canvas height in pixels.
func (e *Engine) Height() int {
	return e.height
}

// Snapshot returns the current canvas version. The returned grid is
// immutable and stays valid regardless of later edits.
func (e *Engine) Snapshot() grid.Grid {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.Current()
}

// ImageBytes returns the current canvas as row-major RGB-interleaved
// bytes, length width*height*3.
func (e *Engine) ImageBytes() []byte {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.Current().Bytes()
}

// PixelAt returns the color of the pixel at (x, y).
func (e *Engine) PixelAt(x, y int) (grid.Color, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.Current().At(x, y)
}

// Brush paints the pixel at (x, y) with the given color and records the
// new canvas version in history. Painting a pixel with its current color
// is absorbed silently. Returns ErrOutOfBounds for coordinates outside
// the canvas; the canvas and history are unmodified on failure.
func (e *Engine) Brush(x, y int, c grid.Color) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, changed, err := e.hist.Current().Set(x, y, c)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	e.hist.Push(next)
	return nil
}

// BeginStroke marks the start of a drag gesture. Brush calls until
// EndStroke coalesce into a single history entry.
func (e *Engine) BeginStroke() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hist.BeginBlock()
}

// EndStroke marks the end of a drag gesture. Idempotent.
func (e *Engine) EndStroke() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hist.EndBlock()
}

// Undo steps the canvas back one history entry and reports whether
// anything changed. Clamped at the oldest entry.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Undo()
}

// Redo steps the canvas forward one history entry and reports whether
// anything changed. Clamped at the newest entry.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.Redo()
}

// Clear paints the whole canvas with the background color as one
// undoable edit. Clearing an already-clear canvas is absorbed silently.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.hist.Current()
	cleared := cur.Fill(e.background)
	if cleared.Equals(cur) {
		return
	}
	e.hist.Push(cleared)
}

// CanUndo reports whether an undo would change the canvas.
func (e *Engine) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.CanUndo()
}

// CanRedo reports whether a redo would change the canvas.
func (e *Engine) CanRedo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.CanRedo()
}

// HistoryLen returns the number of retained history entries.
func (e *Engine) HistoryLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.Len()
}

// Background returns the configured background color.
func (e *Engine) Background() grid.Color {
	return e.background
}
