package fontmetrics

import (
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/osteotek/crosspoint-reader/layout"
)

func TestCanvasStyleMapping(t *testing.T) {
	tests := []struct {
		in   layout.FontStyle
		want canvas.FontStyle
	}{
		{layout.FontRegular, canvas.FontRegular},
		{layout.FontBold, canvas.FontBold},
		{layout.FontItalic, canvas.FontItalic},
		{layout.FontBoldItalic, canvas.FontBold | canvas.FontItalic},
	}
	for _, tt := range tests {
		if got := canvasStyle(tt.in); got != tt.want {
			t.Errorf("canvasStyle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMmToPx(t *testing.T) {
	if got := mmToPx(25.4, 96); got != 96 {
		t.Errorf("one inch at 96 DPI = %d px, want 96", got)
	}
	if got := mmToPx(0, 300); got != 0 {
		t.Errorf("zero mm = %d px, want 0", got)
	}
	// Rounds to nearest, not down.
	if got := mmToPx(25.4/96*1.6, 96); got != 2 {
		t.Errorf("1.6 px rounds to %d, want 2", got)
	}
}

func TestUnregisteredFontMeasuresZero(t *testing.T) {
	m := New(Options{ScreenWidth: 800})
	if got := m.TextWidth(7, "hello", layout.FontRegular); got != 0 {
		t.Errorf("unregistered font width = %d, want 0", got)
	}
	if m.ScreenWidth() != 800 {
		t.Errorf("ScreenWidth() = %d, want 800", m.ScreenWidth())
	}
}

func TestRegisterFontRequiresFaces(t *testing.T) {
	m := New(Options{ScreenWidth: 800})
	if err := m.RegisterFont(1, FaceSpec{SizePt: 12}); err == nil {
		t.Error("expected an error for an empty face spec")
	}
}
