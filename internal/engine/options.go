package engine

import "github.com/dshills/pixelstorm/internal/engine/grid"

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithBackground sets the initial color of every canvas cell.
func WithBackground(c grid.Color) Option {
	return func(e *Engine) {
		e.background = c
	}
}

// WithMaxUndoEntries caps the number of retained history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}
