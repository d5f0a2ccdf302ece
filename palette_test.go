package board

import (
	"strings"
	"testing"
)

func TestPaletteIndex(t *testing.T) {
	p := NewPalette()
	tests := []struct {
		name string
		c    Color
		want int
	}{
		{"black", Black, 0},
		{"red", Red, 4},
		{"white", White, 7},
		{"gold", RGB(255, 215, 0), 31},
		{"first user color", RGB(1, 2, 3), 32},
		{"second user color", RGB(4, 5, 6), 33},
		{"known user color", RGB(1, 2, 3), 32},
		{"alpha ignored", RGBA(4, 5, 6, 10), 33},
		{"null", Null, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Index(tt.c); got != tt.want {
				t.Errorf("Index(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPaletteWriteTo(t *testing.T) {
	p := NewPalette()
	p.Index(Blue)
	p.Index(RGB(1, 2, 3))
	p.Index(RGB(0xab, 0xcd, 0xef))

	var b strings.Builder
	n, err := p.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	want := "0 32 #010203\n0 33 #abcdef\n"
	if b.String() != want {
		t.Errorf("WriteTo() wrote %q, want %q", b.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d, want %d", n, len(want))
	}
}

func TestPaletteUserColorsIsCopy(t *testing.T) {
	p := NewPalette()
	p.Index(RGB(9, 9, 9))
	colors := p.UserColors()
	colors[0] = Red
	if got := p.UserColors()[0]; got != RGB(9, 9, 9) {
		t.Errorf("UserColors() exposed internal slice, got %v", got)
	}
}
