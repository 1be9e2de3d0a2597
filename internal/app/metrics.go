package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks paint operation counters for diagnostics.
type Metrics struct {
	// Edit operations
	brushCount   atomic.Uint64
	brushTotalNs atomic.Int64
	strokeCount  atomic.Uint64

	// History operations
	undoCount atomic.Uint64
	redoCount atomic.Uint64

	// Script runs
	scriptCount  atomic.Uint64
	scriptErrors atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordBrush records one brush operation and its duration.
func (m *Metrics) RecordBrush(duration time.Duration) {
	m.brushCount.Add(1)
	m.brushTotalNs.Add(duration.Nanoseconds())
}

// RecordStroke records one completed drag gesture.
func (m *Metrics) RecordStroke() {
	m.strokeCount.Add(1)
}

// RecordUndo records one undo operation.
func (m *Metrics) RecordUndo() {
	m.undoCount.Add(1)
}

// RecordRedo records one redo operation.
func (m *Metrics) RecordRedo() {
	m.redoCount.Add(1)
}

// RecordScript records one script run and whether it failed.
func (m *Metrics) RecordScript(failed bool) {
	m.scriptCount.Add(1)
	if failed {
		m.scriptErrors.Add(1)
	}
}

// BrushCount returns the total number of brush operations.
func (m *Metrics) BrushCount() uint64 {
	return m.brushCount.Load()
}

// AvgBrushTime returns the mean brush duration.
func (m *Metrics) AvgBrushTime() time.Duration {
	count := m.brushCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(m.brushTotalNs.Load() / int64(count))
}

// StrokeCount returns the total number of completed strokes.
func (m *Metrics) StrokeCount() uint64 {
	return m.strokeCount.Load()
}

// UndoCount returns the total number of undo operations.
func (m *Metrics) UndoCount() uint64 {
	return m.undoCount.Load()
}

// RedoCount returns the total number of redo operations.
func (m *Metrics) RedoCount() uint64 {
	return m.redoCount.Load()
}

// ScriptCount returns the total number of script runs.
func (m *Metrics) ScriptCount() uint64 {
	return m.scriptCount.Load()
}

// ScriptErrors returns the number of failed script runs.
func (m *Metrics) ScriptErrors() uint64 {
	return m.scriptErrors.Load()
}

// Uptime returns the time since the metrics tracker was created.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
