// Package app provides the main application structure and coordination
// for pixelstorm. It wires together configuration, logging, session
// management, and the scripting host, and manages their lifecycles.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/pixelstorm/internal/config"
	"github.com/dshills/pixelstorm/internal/engine"
	"github.com/dshills/pixelstorm/internal/script"
	"github.com/dshills/pixelstorm/internal/session"
)

// Application is the central coordinator for all pixelstorm components.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	cfg     config.Config
	logger  *Logger
	metrics *Metrics

	// Canvas management
	sessions *session.Manager

	// Scripting
	scripts *script.Host

	// Live config reload
	watcher *config.Watcher

	// State
	closed atomic.Bool

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Width and Height override the configured canvas dimensions when
	// positive.
	Width  int
	Height int

	// LogLevel sets the logging verbosity.
	LogLevel string

	// WatchConfig enables live reload of the configuration file.
	WatchConfig bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:     opts,
		metrics:  NewMetrics(),
		sessions: session.NewManager(),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.Width > 0 {
		cfg.Canvas.Width = app.opts.Width
	}
	if app.opts.Height > 0 {
		cfg.Canvas.Height = app.opts.Height
	}
	app.cfg = cfg

	// 2. Logger
	level := ParseLogLevel(app.opts.LogLevel)
	if app.opts.LogLevel == "" {
		level = ParseLogLevel(cfg.Log.Level)
	}
	app.logger = NewLogger(LoggerConfig{Level: level, Prefix: "pixelstorm"})

	// 3. Script host
	host, err := script.NewHost(app.sessions)
	if err != nil {
		return &InitError{Component: "script host", Err: err}
	}
	app.scripts = host

	// 4. Config watcher
	if app.opts.WatchConfig && app.opts.ConfigPath != "" {
		w, err := config.Watch(app.opts.ConfigPath, app.onConfigReload)
		if err != nil {
			return &InitError{Component: "config watcher", Err: err}
		}
		app.watcher = w
	}

	app.logger.Info("initialized: canvas %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	return nil
}

// onConfigReload applies a live-reloaded configuration.
// Canvas dimensions are fixed per session, so only the reloadable
// settings (log level, palette) take effect.
func (app *Application) onConfigReload(cfg config.Config, err error) {
	if err != nil {
		app.logger.Warn("config reload failed: %v", err)
		return
	}

	app.mu.Lock()
	app.cfg.Log = cfg.Log
	app.cfg.Palette = cfg.Palette
	app.mu.Unlock()

	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.logger.Info("config reloaded")
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the metrics tracker.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Sessions returns the session manager.
func (app *Application) Sessions() *session.Manager {
	return app.sessions
}

// NewSession creates a canvas session from the active configuration.
func (app *Application) NewSession() (*session.Session, error) {
	cfg := app.Config()

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	return app.sessions.Create(cfg.Canvas.Width, cfg.Canvas.Height,
		engine.WithBackground(bg),
		engine.WithMaxUndoEntries(cfg.History.MaxEntries),
	)
}

// RunScript executes a Lua script file against the application's
// sessions.
func (app *Application) RunScript(path string) error {
	app.logger.Debug("running script %s", path)
	err := app.scripts.RunFile(path)
	app.metrics.RecordScript(err != nil)
	if err != nil {
		app.logger.Error("script %s: %v", path, err)
	}
	return err
}

// Shutdown releases all application resources. Safe to call more than
// once.
func (app *Application) Shutdown() {
	if app.closed.Swap(true) {
		return
	}

	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("closing config watcher: %v", err)
		}
	}
	app.scripts.Close()
	app.sessions.CloseAll()
	app.logger.Info("shutdown complete")
}
