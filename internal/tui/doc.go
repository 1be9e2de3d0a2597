// Package tui provides the interactive terminal painting surface.
//
// The painter renders one canvas session with two terminal cells per
// pixel, a palette bar, and a status line. Mouse drags translate to
// stroke gestures on the engine: pointer-down begins a stroke, pointer
// moves brush pixels, pointer-up ends the stroke, so a whole drag undoes
// as one step.
package tui
