package marionette

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after drag", "after_drag"},
		{"  ", "unlabeled"},
		{"v1.2-final", "v1.2-final"},
		{"a/b\\c", "a_b_c"},
		{"état", "_tat"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque, unchanged
		0, 0, 0, 0, // transparent, unchanged
	}
	got := unpremultiply(pix)
	want := []byte{
		127, 63, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("unpremultiply = %v, want %v", got, want)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Pix[3] = 255
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestEditorScreenshotQueue(t *testing.T) {
	e := newTestEditor(t)
	e.Screenshot("one")
	e.Screenshot("two")

	got := e.takeScreenshots()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("takeScreenshots = %v", got)
	}
	if len(e.takeScreenshots()) != 0 {
		t.Error("queue should be cleared")
	}
}

func TestScriptScreenshotStep(t *testing.T) {
	e := newTestEditor(t)
	s, err := LoadScript([]byte("steps:\n  - {action: screenshot, label: start}\n"))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, s)

	if got := e.takeScreenshots(); len(got) != 1 || got[0] != "start" {
		t.Errorf("queued screenshots = %v, want [start]", got)
	}
}
