package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one RGB cell value. Colors are compared by structural equality.
type Color struct {
	R, G, B uint8
}

// DefaultBackground is the color every cell starts with on a new grid.
var DefaultBackground = Color{R: 200, G: 200, B: 255}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from a hex string.
// Supports formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err
	}

	switch len(hex) {
	case 3:
		// Short form: RGB -> RRGGBB
		r, errR := parse(string(hex[0]) + string(hex[0]))
		g, errG := parse(string(hex[1]) + string(hex[1]))
		b, errB := parse(string(hex[2]) + string(hex[2]))
		if errR != nil || errG != nil || errB != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		return Color{R: r, G: g, B: b}, nil

	case 6:
		r, errR := parse(hex[0:2])
		g, errG := parse(hex[2:4])
		b, errB := parse(hex[4:6])
		if errR != nil || errG != nil || errB != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		return Color{R: r, G: g, B: b}, nil

	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
}

// Hex returns the color as a "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the hex representation.
func (c Color) String() string {
	return c.Hex()
}
