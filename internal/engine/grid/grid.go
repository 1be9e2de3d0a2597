package grid

import "errors"

// Errors returned by grid operations.
var (
	// ErrInvalidDimension indicates a width or height below 1.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds indicates a pixel coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("pixel coordinate out of bounds")
)

// Grid is an immutable width x height pixel canvas.
// Operations return new Grid values; the original is never modified.
// This enables cheap snapshots and thread-safe concurrent read access.
type Grid struct {
	width  int
	height int
	root   *node
}

// New creates a grid with every cell set to DefaultBackground.
// Returns ErrInvalidDimension if width or height is below 1.
func New(width, height int) (Grid, error) {
	return NewFilled(width, height, DefaultBackground)
}

// NewFilled creates a grid with every cell set to the given color.
// Returns ErrInvalidDimension if width or height is below 1.
func NewFilled(width, height int, c Color) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, ErrInvalidDimension
	}
	return Grid{
		width:  width,
		height: height,
		root:   buildTree(width*height, c),
	}, nil
}

// Width returns the grid width in pixels.
func (g Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g Grid) Height() int {
	return g.height
}

// Len returns the total cell count (width * height).
func (g Grid) Len() int {
	if g.root == nil {
		return 0
	}
	return g.root.count
}

// IsZero reports whether the grid is the zero value (no backing storage).
func (g Grid) IsZero() bool {
	return g.root == nil
}

// inBounds reports whether (x, y) is inside the grid extent.
func (g Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index returns the row-major cell offset for (x, y).
func (g Grid) index(x, y int) int {
	return y*g.width + x
}

// At returns the color of the pixel at (x, y).
// Returns ErrOutOfBounds if the coordinate is outside the grid.
func (g Grid) At(x, y int) (Color, error) {
	if !g.inBounds(x, y) {
		return Color{}, ErrOutOfBounds
	}
	return g.root.at(g.index(x, y)), nil
}

// Set returns a grid with the pixel at (x, y) set to c.
// The returned grid shares all unmodified substructure with the receiver.
//
// The second result reports whether a new grid was produced: it is false
// when the pixel already has the requested color, in which case the
// receiver is returned unchanged. Callers rely on that signal to avoid
// recording no-op edits in undo history.
//
// Returns ErrOutOfBounds if the coordinate is outside the grid; the
// receiver is unaffected.
func (g Grid) Set(x, y int, c Color) (Grid, bool, error) {
	if !g.inBounds(x, y) {
		return g, false, ErrOutOfBounds
	}

	offset := g.index(x, y)
	if g.root.at(offset) == c {
		return g, false, nil
	}

	return Grid{
		width:  g.width,
		height: g.height,
		root:   g.root.set(offset, c),
	}, true, nil
}

// Fill returns a grid of the same dimensions with every cell set to c.
func (g Grid) Fill(c Color) Grid {
	if g.root == nil {
		return g
	}
	return Grid{
		width:  g.width,
		height: g.height,
		root:   buildTree(g.width*g.height, c),
	}
}

// Bytes returns the grid as row-major RGB-interleaved bytes, three bytes
// per cell, length width*height*3. This is the external representation
// consumed by renderers.
func (g Grid) Bytes() []byte {
	if g.root == nil {
		return nil
	}
	return g.root.appendBytes(make([]byte, 0, g.root.count*3))
}

// Cells returns a flat row-major copy of every cell.
func (g Grid) Cells() []Color {
	if g.root == nil {
		return nil
	}
	return g.root.appendCells(make([]Color, 0, g.root.count))
}

// Equals reports whether two grids have the same dimensions and
// cell-for-cell identical contents.
func (g Grid) Equals(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	if g.root == other.root {
		return true
	}
	if g.root == nil || other.root == nil {
		return false
	}
	return nodesEqual(g.root, other.root)
}

// nodesEqual compares two packed subtrees cell by cell.
// Shared nodes compare equal without descending.
func nodesEqual(a, b *node) bool {
	if a == b {
		return true
	}
	if a.count != b.count || a.height != b.height {
		return false
	}
	if a.isLeaf() {
		for i := range a.cells {
			if a.cells[i] != b.cells[i] {
				return false
			}
		}
		return true
	}
	for i := range a.children {
		if !nodesEqual(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
