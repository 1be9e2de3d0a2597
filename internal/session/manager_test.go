package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dshills/pixelstorm/internal/engine"
	"github.com/dshills/pixelstorm/internal/engine/grid"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager()

	s, err := m.Create(8, 6)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.ID() == "" {
		t.Error("session has empty ID")
	}
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("dimensions = %dx%d, want 8x6", s.Width(), s.Height())
	}
	if s.Created().IsZero() {
		t.Error("creation time not set")
	}

	got, ok := m.Get(s.ID())
	if !ok {
		t.Fatal("Get failed for a live session")
	}
	if got != s {
		t.Error("Get returned a different session")
	}
}

func TestCreateInvalidDimension(t *testing.T) {
	m := NewManager()
	if _, err := m.Create(0, 5); !errors.Is(err, engine.ErrInvalidDimension) {
		t.Errorf("Create(0, 5) = %v, want ErrInvalidDimension", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d after failed create, want 0", m.Len())
	}
}

func TestUniqueIDs(t *testing.T) {
	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := m.Create(2, 2)
		if err != nil {
			t.Fatal(err)
		}
		if seen[s.ID()] {
			t.Fatalf("duplicate session ID %s", s.ID())
		}
		seen[s.ID()] = true
	}
	if m.Len() != 50 {
		t.Errorf("Len = %d, want 50", m.Len())
	}
}

func TestClose(t *testing.T) {
	m := NewManager()
	s, _ := m.Create(2, 2)

	if !m.Close(s.ID()) {
		t.Error("Close returned false for a live session")
	}
	if _, ok := m.Get(s.ID()); ok {
		t.Error("Get succeeded after Close")
	}
	if m.Close(s.ID()) {
		t.Error("second Close returned true")
	}
	if m.Close("no-such-id") {
		t.Error("Close of unknown ID returned true")
	}
}

func TestCloseAll(t *testing.T) {
	m := NewManager()
	for i := 0; i < 3; i++ {
		m.Create(2, 2)
	}
	m.CloseAll()
	if m.Len() != 0 {
		t.Errorf("Len = %d after CloseAll, want 0", m.Len())
	}
}

func TestIDs(t *testing.T) {
	m := NewManager()
	a, _ := m.Create(2, 2)
	b, _ := m.Create(2, 2)

	ids := m.IDs()
	if len(ids) != 2 {
		t.Fatalf("IDs length = %d, want 2", len(ids))
	}
	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found[a.ID()] || !found[b.ID()] {
		t.Error("IDs missing a live session")
	}
}

func TestSessionForwarding(t *testing.T) {
	m := NewManager()
	s, err := m.Create(2, 1)
	if err != nil {
		t.Fatal(err)
	}

	s.BeginStroke()
	if err := s.Brush(0, 0, grid.Color{}); err != nil {
		t.Fatalf("Brush failed: %v", err)
	}
	if err := s.Brush(0, 0, grid.Color{R: 9}); err != nil {
		t.Fatalf("Brush failed: %v", err)
	}
	s.EndStroke()

	want := []byte{9, 0, 0, 200, 200, 255}
	if got := s.ImageBytes(); !bytes.Equal(got, want) {
		t.Errorf("ImageBytes = %v, want %v", got, want)
	}

	if !s.Undo() {
		t.Fatal("Undo returned false")
	}
	want = []byte{200, 200, 255, 200, 200, 255}
	if got := s.ImageBytes(); !bytes.Equal(got, want) {
		t.Errorf("ImageBytes after undo = %v, want %v", got, want)
	}
	if !s.Redo() {
		t.Fatal("Redo returned false")
	}
}
