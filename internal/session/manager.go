package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/pixelstorm/internal/engine"
)

// ErrSessionNotFound indicates an unknown session ID.
var ErrSessionNotFound = errors.New("session not found")

// Manager owns all live sessions and hands out opaque handles.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create seeds a new session with a width x height canvas.
// Returns engine.ErrInvalidDimension for unusable dimensions.
func (m *Manager) Create(width, height int, opts ...engine.Option) (*Session, error) {
	eng, err := engine.New(width, height, opts...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:      uuid.NewString(),
		created: time.Now(),
		eng:     eng,
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close removes the session with the given ID and reports whether it
// existed. Grid versions referenced by callers stay valid.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// CloseAll removes every session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]*Session)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs returns the handles of every live session.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}
