package grid

import "testing"

// benchSet measures one pixel edit on a w x h canvas. Edit cost should
// grow with tree depth, not with cell count.
func benchSet(b *testing.B, w, h int) {
	g, err := New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	colors := [2]Color{{R: 1}, {R: 2}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate colors so every Set produces a new version.
		_, _, _ = g.Set(w/2, h/2, colors[i%2])
	}
}

func BenchmarkSet16x16(b *testing.B)     { benchSet(b, 16, 16) }
func BenchmarkSet64x64(b *testing.B)     { benchSet(b, 64, 64) }
func BenchmarkSet256x256(b *testing.B)   { benchSet(b, 256, 256) }
func BenchmarkSet1024x1024(b *testing.B) { benchSet(b, 1024, 1024) }

func BenchmarkBytes256x256(b *testing.B) {
	g, err := New(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Bytes()
	}
}
