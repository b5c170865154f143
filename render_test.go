package marionette

import "testing"

func TestCornerHandles(t *testing.T) {
	got := cornerHandles(Rect{10, 20, 30, 40}, 4)
	want := [4]Rect{
		{8, 18, 4, 4},
		{38, 18, 4, 4},
		{8, 58, 4, 4},
		{38, 58, 4, 4},
	}
	if got != want {
		t.Errorf("cornerHandles = %v, want %v", got, want)
	}
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(DefaultConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if r.face == nil || r.small == nil {
		t.Error("fonts not loaded")
	}
	if r.palette.Accent.G < 0.99 || r.palette.Accent.R > 0.01 {
		t.Errorf("accent = %+v, want green", r.palette.Accent)
	}
}

func TestNewRendererRejectsBadTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Accent = "green"
	if _, err := NewRenderer(cfg); err == nil {
		t.Error("expected error for non-hex accent")
	}
}
