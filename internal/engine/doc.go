// Package engine provides the paint engine for one canvas editing session.
//
// The engine combines an immutable pixel grid with a gesture-aware undo
// history. Every successful brush stroke produces a new grid version; the
// history retains each version cheaply because versions share unmodified
// storage.
//
// Basic usage:
//
//	eng, err := engine.New(32, 32)
//	if err != nil {
//	    return err
//	}
//
//	// Single edits: one history entry each
//	eng.Brush(3, 4, engine.Color{R: 255})
//
//	// A drag gesture: many edits, one history entry
//	eng.BeginStroke()
//	eng.Brush(5, 5, black)
//	eng.Brush(5, 6, black)
//	eng.EndStroke()
//
//	eng.Undo() // reverts the whole stroke
//
// Painting a pixel with its current color is absorbed silently and never
// recorded, so revisiting pixels during a drag does not pollute history.
//
// All methods are safe for concurrent use; a single engine serializes its
// callers internally.
package engine
