package tui

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// DefaultPaletteSize is the number of colors a generated palette holds.
const DefaultPaletteSize = 9

// GeneratePalette builds a painting palette of n colors: black, white,
// and evenly spaced hues. Used when the configuration supplies no
// palette. Values of n below 3 are raised to 3.
func GeneratePalette(n int) []grid.Color {
	if n < 3 {
		n = 3
	}

	palette := make([]grid.Color, 0, n)
	palette = append(palette, grid.ColorBlack, grid.ColorWhite)

	hues := n - 2
	for i := 0; i < hues; i++ {
		h := float64(i) * 360.0 / float64(hues)
		r, g, b := colorful.Hsv(h, 0.85, 0.95).RGB255()
		palette = append(palette, grid.Color{R: r, G: g, B: b})
	}
	return palette
}
