package config

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// Config is the full application configuration.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas" yaml:"canvas"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Log     LogConfig     `toml:"log" yaml:"log"`

	// Palette is the color choices offered by the painting surface,
	// as hex strings. Empty means a generated palette.
	Palette []string `toml:"palette" yaml:"palette"`
}

// CanvasConfig configures the canvas seeded at startup.
type CanvasConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Background is the initial cell color as a hex string.
	Background string `toml:"background" yaml:"background"`
}

// HistoryConfig configures the undo history.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      32,
			Height:     32,
			Background: grid.DefaultBackground.Hex(),
		},
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return fmt.Errorf("canvas dimensions %dx%d: %w",
			c.Canvas.Width, c.Canvas.Height, grid.ErrInvalidDimension)
	}
	if _, err := grid.ColorFromHex(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}
	if c.History.MaxEntries < 2 {
		return fmt.Errorf("history max_entries %d: must be at least 2", c.History.MaxEntries)
	}
	for i, hex := range c.Palette {
		if _, err := grid.ColorFromHex(hex); err != nil {
			return fmt.Errorf("palette entry %d: %w", i, err)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: must be debug, info, warn, or error", c.Log.Level)
	}
	return nil
}

// BackgroundColor returns the parsed canvas background color.
func (c Config) BackgroundColor() (grid.Color, error) {
	return grid.ColorFromHex(c.Canvas.Background)
}

// PaletteColors returns the parsed palette. Empty when unconfigured.
func (c Config) PaletteColors() ([]grid.Color, error) {
	if len(c.Palette) == 0 {
		return nil, nil
	}
	colors := make([]grid.Color, len(c.Palette))
	for i, hex := range c.Palette {
		col, err := grid.ColorFromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colors[i] = col
	}
	return colors, nil
}
