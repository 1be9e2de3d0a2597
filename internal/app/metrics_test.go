package app

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordBrush(10 * time.Millisecond)
	m.RecordBrush(20 * time.Millisecond)
	m.RecordStroke()
	m.RecordUndo()
	m.RecordUndo()
	m.RecordRedo()
	m.RecordScript(false)
	m.RecordScript(true)

	if m.BrushCount() != 2 {
		t.Errorf("BrushCount = %d, want 2", m.BrushCount())
	}
	if m.StrokeCount() != 1 {
		t.Errorf("StrokeCount = %d, want 1", m.StrokeCount())
	}
	if m.UndoCount() != 2 {
		t.Errorf("UndoCount = %d, want 2", m.UndoCount())
	}
	if m.RedoCount() != 1 {
		t.Errorf("RedoCount = %d, want 1", m.RedoCount())
	}
	if m.ScriptCount() != 2 {
		t.Errorf("ScriptCount = %d, want 2", m.ScriptCount())
	}
	if m.ScriptErrors() != 1 {
		t.Errorf("ScriptErrors = %d, want 1", m.ScriptErrors())
	}
}

func TestAvgBrushTime(t *testing.T) {
	m := NewMetrics()
	if m.AvgBrushTime() != 0 {
		t.Errorf("AvgBrushTime with no samples = %v, want 0", m.AvgBrushTime())
	}

	m.RecordBrush(10 * time.Millisecond)
	m.RecordBrush(30 * time.Millisecond)
	if avg := m.AvgBrushTime(); avg != 20*time.Millisecond {
		t.Errorf("AvgBrushTime = %v, want 20ms", avg)
	}
}

func TestUptime(t *testing.T) {
	m := NewMetrics()
	if m.Uptime() < 0 {
		t.Errorf("Uptime = %v, want non-negative", m.Uptime())
	}
}
