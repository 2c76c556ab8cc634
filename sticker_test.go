package sticker

import (
	"image/color"
	"testing"
)

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"opaque white", Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"half red premultiplied", Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
		{"transparent", Color{1, 1, 1, 0}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.toRGBA(); got != tt.want {
				t.Errorf("toRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorWithAlpha(t *testing.T) {
	got := Color{R: 1, A: 0.8}.withAlpha(0.5)
	assertNear(t, "alpha", got.A, 0.4)
	if got.R != 1 {
		t.Errorf("R = %v, want 1", got.R)
	}
}

func TestColorFrom(t *testing.T) {
	got := colorFrom(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	if got != (Color{R: 1, A: 1}) {
		t.Errorf("colorFrom(red) = %+v", got)
	}
}

func TestHandleString(t *testing.T) {
	tests := []struct {
		h    Handle
		want string
	}{
		{HandleNone, "none"},
		{HandleBody, "body"},
		{HandleResize, "resize"},
		{HandleRotate, "rotate"},
		{HandleClose, "close"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Handle(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if got := EventPointerDown.String(); got != "pointerdown" {
		t.Errorf("EventPointerDown.String() = %q", got)
	}
	if got := EventType(42).String(); got != "unknown" {
		t.Errorf("EventType(42).String() = %q", got)
	}
}
