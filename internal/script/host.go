package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pixelstorm/internal/session"
)

// DefaultExecutionTimeout bounds a single script run.
const DefaultExecutionTimeout = 30 * time.Second

// Host owns one Lua state with the paint API registered.
type Host struct {
	mu       sync.Mutex
	state    *lua.LState
	sessions *session.Manager
	timeout  time.Duration
	closed   bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithExecutionTimeout bounds each RunFile/RunString call.
// A zero or negative duration disables the bound.
func WithExecutionTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.timeout = d
	}
}

// NewHost creates a script host bound to the given session manager.
func NewHost(sessions *session.Manager, opts ...HostOption) (*Host, error) {
	h := &Host{
		state:    lua.NewState(),
		sessions: sessions,
		timeout:  DefaultExecutionTimeout,
	}

	for _, opt := range opts {
		opt(h)
	}

	mod := NewPaintModule(sessions)
	if err := mod.Register(h.state); err != nil {
		h.state.Close()
		return nil, fmt.Errorf("registering %s module: %w", mod.Name(), err)
	}

	return h, nil
}

// RunFile executes a Lua script file against the host's state.
func (h *Host) RunFile(path string) error {
	return h.run(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// RunString executes Lua source against the host's state.
func (h *Host) RunString(src string) error {
	return h.run(func(L *lua.LState) error {
		return L.DoString(src)
	})
}

// run executes fn under the execution timeout.
func (h *Host) run(fn func(*lua.LState) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	if h.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		h.state.SetContext(ctx)
		defer h.state.RemoveContext()
	}

	return fn(h.state)
}

// Close shuts down the Lua state. Further runs return ErrHostClosed.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}
