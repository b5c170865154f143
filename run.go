package marionette

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps ebiten keys to editor keys, checked in order each frame.
var keyBindings = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
}

// host adapts an Editor to ebiten.Game.
type host struct {
	editor   *Editor
	renderer *Renderer
	exitDone bool

	last    time.Time
	cursor  Point
	started bool
	chars   []rune
	events  []Event
}

// RunOptions tweaks Run.
type RunOptions struct {
	// ExitWhenScriptDone ends the loop once an attached script completes.
	ExitWhenScriptDone bool
}

// Run opens a window sized from the editor's config and drives the editor
// until the window closes.
func Run(e *Editor, opts RunOptions) error {
	cfg := e.Config()
	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	h := &host{editor: e, renderer: r, exitDone: opts.ExitWhenScriptDone}
	logger().Info().
		Str("title", cfg.Title).
		Int("width", cfg.Width).Int("height", cfg.Height).
		Int("tps", cfg.TPS).
		Msg("editor started")

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("marionette: run: %w", err)
	}
	return nil
}

// Update measures the real frame delta and forwards it with this frame's
// input to the editor.
func (h *host) Update() error {
	now := time.Now()
	var deltaMs float32
	if !h.last.IsZero() {
		deltaMs = float32(now.Sub(h.last).Seconds() * 1000)
	}
	h.last = now

	h.editor.Frame(deltaMs, h.collectEvents())

	if h.exitDone && h.editor.script != nil && h.editor.script.Done() {
		logger().Info().Msg("script finished")
		return ebiten.Termination
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	h.renderer.Draw(screen, h.editor)
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.editor.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// collectEvents translates this frame's ebiten input into editor events.
func (h *host) collectEvents() []Event {
	h.events = h.events[:0]

	x, y := ebiten.CursorPosition()
	if p := (Point{x, y}); !h.started || p != h.cursor {
		h.started = true
		h.cursor = p
		h.events = append(h.events, PointerMove(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.events = append(h.events, PointerDown(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.events = append(h.events, PointerUp())
	}

	h.chars = ebiten.AppendInputChars(h.chars[:0])
	for _, r := range h.chars {
		h.events = append(h.events, TextInput(r))
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			h.events = append(h.events, KeyDown(b.key))
		}
	}
	return h.events
}
