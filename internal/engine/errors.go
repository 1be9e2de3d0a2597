package engine

import "github.com/dshills/pixelstorm/internal/engine/grid"

// Errors returned by engine operations. They alias the grid package's
// sentinels so errors.Is works across both layers.
var (
	// ErrInvalidDimension indicates a zero or negative canvas dimension.
	ErrInvalidDimension = grid.ErrInvalidDimension

	// ErrOutOfBounds indicates a pixel coordinate outside the canvas.
	// The grid and history are unmodified when this is returned.
	ErrOutOfBounds = grid.ErrOutOfBounds
)
