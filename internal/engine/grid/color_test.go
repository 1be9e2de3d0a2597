package grid

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"full form", "#C8C8FF", Color{R: 200, G: 200, B: 255}, false},
		{"no hash", "C8C8FF", Color{R: 200, G: 200, B: 255}, false},
		{"short form", "#F00", Color{R: 255, G: 0, B: 0}, false},
		{"lowercase", "#ff00ff", Color{R: 255, G: 0, B: 255}, false},
		{"black", "#000000", Color{}, false},
		{"bad length", "#FFFF", Color{}, true},
		{"bad digits", "#GGGGGG", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorFromHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ColorFromHex(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 200, G: 200, B: 255}
	if c.Hex() != "#C8C8FF" {
		t.Errorf("Hex = %s, want #C8C8FF", c.Hex())
	}
	back, err := ColorFromHex(c.Hex())
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}

func TestColorFromRGB(t *testing.T) {
	c := ColorFromRGB(1, 2, 3)
	if c != (Color{R: 1, G: 2, B: 3}) {
		t.Errorf("ColorFromRGB = %v", c)
	}
}
