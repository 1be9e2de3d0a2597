// Package main is the entry point for the pixelstorm painter.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/pixelstorm/internal/app"
	"github.com/dshills/pixelstorm/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, scriptPath := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
		os.Exit(1)
	}()

	// Headless script run
	if scriptPath != "" {
		if err := application.RunScript(scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Interactive painting
	sess, err := application.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create canvas: %v\n", err)
		return 1
	}

	palette, err := application.Config().PaletteColors()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	painterOpts := []tui.Option{
		tui.WithLogger(application.Logger()),
		tui.WithMetrics(application.Metrics()),
	}
	if len(palette) > 0 {
		painterOpts = append(painterOpts, tui.WithPalette(palette))
	}

	painter, err := tui.New(sess, painterOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create painter: %v\n", err)
		return 1
	}

	if err := painter.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	m := application.Metrics()
	application.Logger().Info("session ended: %d brushes, %d strokes, %d undos",
		m.BrushCount(), m.StrokeCount(), m.UndoCount())
	return 0
}

func parseFlags() (app.Options, string) {
	var opts app.Options
	var scriptPath string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.Width, "width", 0, "Canvas width in pixels (overrides config)")
	flag.IntVar(&opts.Height, "height", 0, "Canvas height in pixels (overrides config)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.WatchConfig, "watch-config", false, "Reload the config file on change")
	flag.StringVar(&scriptPath, "script", "", "Run a Lua script and exit")
	flag.StringVar(&scriptPath, "s", "", "Run a Lua script and exit (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pixelstorm - terminal pixel painter\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pixelstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pixelstorm                      Paint on the default canvas\n")
		fmt.Fprintf(os.Stderr, "  pixelstorm -width 64 -height 48 Paint on a 64x48 canvas\n")
		fmt.Fprintf(os.Stderr, "  pixelstorm -s sprite.lua        Run a paint script\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Pixelstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(2)
	}

	return opts, scriptPath
}
