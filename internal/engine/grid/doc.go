// Package grid provides an immutable pixel grid for efficient canvas storage.
//
// A grid is a fixed-size width x height buffer of RGB cells backed by a
// shallow tree: leaf nodes hold chunks of cells and internal nodes hold
// child references. Editing a pixel copies only the path from the root to
// the affected leaf, so every other node is shared with the previous
// version.
//
// Key features:
//   - O(log n) pixel reads and writes
//   - Immutable operations return new grids; originals are never modified
//   - Old versions stay valid and cheap to retain, enabling snapshot-based
//     undo history
//   - Thread-safe for concurrent read access
//
// Basic usage:
//
//	g, _ := grid.New(64, 64)
//	g2, changed, _ := g.Set(3, 4, grid.Color{R: 255})
//	if changed {
//	    bytes := g2.Bytes() // row-major RGB, 64*64*3 bytes
//	}
//
// Set reports no change when the target cell already has the requested
// color; callers use that signal to avoid recording no-op edits.
package grid
