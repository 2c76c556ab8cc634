package sticker

import (
	"bytes"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"simple", "simple"},
		{"with spaces", "with_spaces"},
		{"path/to/file", "path_to_file"},
		{"v1.2-rc", "v1.2-rc"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"emoji✓", "emoji_"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	src := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	dst := make([]byte, len(src))
	unpremultiply(dst, src)

	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("unpremultiply = %v, want %v", dst, want)
	}
}

func TestScreenshotQueues(t *testing.T) {
	b := newTestBoard()
	b.Screenshot("one")
	b.Screenshot("two")
	if len(b.screenshotQueue) != 2 {
		t.Errorf("expected 2 queued screenshots, got %d", len(b.screenshotQueue))
	}
}
