package grid

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	g, err := New(4, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("wrong dimensions: %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 12 {
		t.Errorf("Len = %d, want 12", g.Len())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, err := g.At(x, y)
			if err != nil {
				t.Fatalf("At(%d,%d) failed: %v", x, y, err)
			}
			if c != DefaultBackground {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, c, DefaultBackground)
			}
		}
	}
}

func TestNewInvalidDimension(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"both zero", 0, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("New(%d, %d) = %v, want ErrInvalidDimension", tt.width, tt.height, err)
			}
		})
	}
}

func TestNewFilled(t *testing.T) {
	red := Color{R: 255}
	g, err := NewFilled(3, 3, red)
	if err != nil {
		t.Fatalf("NewFilled failed: %v", err)
	}
	c, _ := g.At(2, 2)
	if c != red {
		t.Errorf("At(2,2) = %v, want %v", c, red)
	}
}

func TestSetChangesOnlyTarget(t *testing.T) {
	g, _ := New(8, 8)
	black := Color{}

	g2, changed, err := g.Set(3, 5, black)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !changed {
		t.Fatal("Set reported no change for a differing color")
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c, _ := g2.At(x, y)
			want := DefaultBackground
			if x == 3 && y == 5 {
				want = black
			}
			if c != want {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}

	// Source grid is untouched
	c, _ := g.At(3, 5)
	if c != DefaultBackground {
		t.Errorf("source grid mutated: At(3,5) = %v", c)
	}
}

func TestSetNoChange(t *testing.T) {
	g, _ := New(2, 2)

	g2, changed, err := g.Set(1, 1, DefaultBackground)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if changed {
		t.Error("Set reported a change for an identical color")
	}
	if !g2.Equals(g) {
		t.Error("no-op Set returned a different grid")
	}
}

func TestSetOutOfBounds(t *testing.T) {
	g, _ := New(4, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"x negative", -1, 0},
		{"y negative", 0, -1},
		{"x at width", 4, 0},
		{"y at height", 0, 4},
		{"both beyond", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, changed, err := g.Set(tt.x, tt.y, Color{})
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Set(%d,%d) = %v, want ErrOutOfBounds", tt.x, tt.y, err)
			}
			if changed {
				t.Error("out-of-bounds Set reported a change")
			}
			if _, err := g.At(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("At(%d,%d) = %v, want ErrOutOfBounds", tt.x, tt.y, err)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	g, _ := New(2, 1)
	g2, _, err := g.Set(0, 0, Color{})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	want := []byte{0, 0, 0, 200, 200, 255}
	if got := g2.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes = %v, want %v", got, want)
	}

	// Original still renders the background
	want = []byte{200, 200, 255, 200, 200, 255}
	if got := g.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("source Bytes = %v, want %v", got, want)
	}
}

func TestBytesRowMajor(t *testing.T) {
	g, _ := NewFilled(3, 2, ColorBlack)
	// Mark (2, 1): offset = 1*3 + 2 = 5, byte offset 15
	g2, _, _ := g.Set(2, 1, Color{R: 9, G: 8, B: 7})

	b := g2.Bytes()
	if len(b) != 18 {
		t.Fatalf("Bytes length = %d, want 18", len(b))
	}
	if b[15] != 9 || b[16] != 8 || b[17] != 7 {
		t.Errorf("cell (2,1) bytes = %v, want [9 8 7]", b[15:18])
	}
}

func TestStructuralSharing(t *testing.T) {
	// Large enough for a multi-level tree.
	g, _ := New(64, 64)
	g2, _, err := g.Set(0, 0, Color{})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if g.root == g2.root {
		t.Fatal("Set returned the same root")
	}
	if g.root.isLeaf() || g2.root.isLeaf() {
		t.Fatal("expected a multi-level tree at 64x64")
	}

	// Only the first child is on the edited path; all siblings must be
	// the identical nodes, not copies.
	shared := 0
	for i := 1; i < len(g.root.children); i++ {
		if g.root.children[i] == g2.root.children[i] {
			shared++
		}
	}
	if shared != len(g.root.children)-1 {
		t.Errorf("shared %d of %d sibling nodes, want all", shared, len(g.root.children)-1)
	}
}

func TestFill(t *testing.T) {
	g, _ := New(5, 5)
	g2, _, _ := g.Set(2, 2, Color{})

	filled := g2.Fill(ColorWhite)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c, _ := filled.At(x, y)
			if c != ColorWhite {
				t.Fatalf("At(%d,%d) = %v after Fill", x, y, c)
			}
		}
	}
}

func TestEquals(t *testing.T) {
	a, _ := New(4, 4)
	b, _ := New(4, 4)
	if !a.Equals(b) {
		t.Error("identical fresh grids not equal")
	}

	c, _, _ := a.Set(1, 1, Color{})
	if a.Equals(c) {
		t.Error("edited grid equal to source")
	}

	// Value equality across separately-built edit paths
	d, _, _ := b.Set(1, 1, Color{})
	if !c.Equals(d) {
		t.Error("grids with identical contents not equal")
	}

	small, _ := New(2, 4)
	if a.Equals(small) {
		t.Error("grids with different dimensions equal")
	}
}

func TestCells(t *testing.T) {
	g, _ := New(2, 2)
	g2, _, _ := g.Set(1, 0, ColorBlack)

	cells := g2.Cells()
	if len(cells) != 4 {
		t.Fatalf("Cells length = %d, want 4", len(cells))
	}
	if cells[1] != ColorBlack {
		t.Errorf("cells[1] = %v, want black", cells[1])
	}
	if cells[0] != DefaultBackground || cells[2] != DefaultBackground {
		t.Error("untouched cells changed")
	}
}

func TestManyVersionsStayValid(t *testing.T) {
	g, _ := New(16, 16)
	versions := []Grid{g}

	cur := g
	for i := 0; i < 16; i++ {
		next, changed, err := cur.Set(i, i, Color{R: uint8(i + 1)})
		if err != nil || !changed {
			t.Fatalf("Set %d: changed=%v err=%v", i, changed, err)
		}
		versions = append(versions, next)
		cur = next
	}

	// Every retained version still reads back its own state.
	for v, g := range versions {
		for i := 0; i < 16; i++ {
			c, _ := g.At(i, i)
			want := DefaultBackground
			if i < v {
				want = Color{R: uint8(i + 1)}
			}
			if c != want {
				t.Fatalf("version %d At(%d,%d) = %v, want %v", v, i, i, c, want)
			}
		}
	}
}
