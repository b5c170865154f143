package marionette

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontSize      = 16
	smallFontSize = 12
	handleSize    = 4
)

// TextOptions configures a single text draw.
type TextOptions struct {
	Position Point
	Color    Color
	// Centered places Position at the middle of the text instead of its
	// top-left corner.
	Centered bool
	Small    bool
}

// Renderer draws an Editor. It owns its fonts and never retains editor state
// between frames; everything is read through the editor's accessors.
type Renderer struct {
	palette Palette
	face    *text.GoTextFace
	small   *text.GoTextFace
	showFPS bool

	screenshotDir string
}

// NewRenderer loads the UI font and parses the theme from cfg.
func NewRenderer(cfg Config) (*Renderer, error) {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return nil, fmt.Errorf("marionette: %w", err)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("marionette: failed to parse TTF data: %w", err)
	}
	return &Renderer{
		palette: palette,
		face:    &text.GoTextFace{Source: source, Size: fontSize},
		small:   &text.GoTextFace{Source: source, Size: smallFontSize},
		showFPS: cfg.ShowFPS,

		screenshotDir: cfg.ScreenshotDir,
	}, nil
}

// Draw renders the full editor onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, e *Editor) {
	screen.Fill(r.palette.Background.ToRGBA())

	r.drawLayerButtons(screen, e)
	r.drawWorkspace(screen, e.Workspace())
	r.drawPuppet(screen, e)
	r.drawPanel(screen, e)

	if r.showFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			layerButtonX, e.Viewport().Height-40)
	}

	r.flushScreenshots(screen, e.takeScreenshots())
}

func (r *Renderer) drawText(dst *ebiten.Image, s string, opts TextOptions) {
	face := r.face
	if opts.Small {
		face = r.small
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(opts.Position.X), float64(opts.Position.Y))
	op.ColorScale.ScaleWithColor(opts.Color.ToRGBA())
	if opts.Centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

func fillRect(dst *ebiten.Image, rc Rect, c Color) {
	vector.DrawFilledRect(dst, float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height), c.ToRGBA(), false)
}

func strokeRect(dst *ebiten.Image, rc Rect, c Color) {
	vector.StrokeRect(dst, float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height), 1, c.ToRGBA(), false)
}

func (r *Renderer) drawLayerButtons(dst *ebiten.Image, e *Editor) {
	for _, b := range e.LayerButtons() {
		active := b.Kind == e.ActiveKind()
		if b.Hovered {
			strokeRect(dst, b.Rect, r.palette.Accent)
		}
		if active {
			fillRect(dst, b.Rect, r.palette.Accent)
		}
		c := r.palette.Text
		if active {
			c = ColorBlack
		}
		r.drawText(dst, b.Label, TextOptions{Position: b.Rect.Center(), Color: c, Centered: true})
	}
}

func (r *Renderer) drawWorkspace(dst *ebiten.Image, w *Workspace) {
	rc := w.Rect
	c := w.Center()
	strokeRect(dst, rc, r.palette.Grid)
	vector.StrokeLine(dst, float32(c.X), float32(rc.Y), float32(c.X), float32(rc.Y+rc.Height), 1, r.palette.Grid.ToRGBA(), false)
	vector.StrokeLine(dst, float32(rc.X), float32(c.Y), float32(rc.X+rc.Width), float32(c.Y), 1, r.palette.Grid.ToRGBA(), false)
}

// cornerHandles returns the selection handles centered on each corner of rc.
func cornerHandles(rc Rect, size int) [4]Rect {
	h := Rect{Width: size, Height: size}
	return [4]Rect{
		h.CenteredOn(Point{rc.X, rc.Y}),
		h.CenteredOn(Point{rc.X + rc.Width, rc.Y}),
		h.CenteredOn(Point{rc.X, rc.Y + rc.Height}),
		h.CenteredOn(Point{rc.X + rc.Width, rc.Y + rc.Height}),
	}
}

func (r *Renderer) drawPuppet(dst *ebiten.Image, e *Editor) {
	hovered, hasHover := e.HoveredComponent()
	for _, c := range e.Puppet().Components() {
		area := e.ComponentScreenRect(c.Kind())
		col := r.palette.Component
		if hasHover && hovered == c.Kind() {
			col = col.Blend(r.palette.Accent, 0.5)
		}
		strokeRect(dst, area, col)

		if c.Kind() != e.ActiveKind() {
			continue
		}
		handle := col.WithAlpha(float64(e.SelectionPulse().Value()))
		for _, h := range cornerHandles(area, handleSize) {
			fillRect(dst, h, handle)
		}
		r.drawText(dst, c.Kind().String(), TextOptions{
			Position: Point{area.X, area.Y - 20},
			Color:    r.palette.TextMuted,
			Small:    true,
		})
	}
}

func (r *Renderer) drawButton(dst *ebiten.Image, b *Button) {
	bg, fg := r.palette.Widget, r.palette.Text
	if b.Hovered {
		bg, fg = r.palette.Accent, ColorBlack
	}
	fillRect(dst, b.Rect, bg)
	r.drawText(dst, b.Label, TextOptions{Position: b.Rect.Center(), Color: fg, Centered: true, Small: true})
}

func (r *Renderer) drawTextField(dst *ebiten.Image, f *TextField, caret bool) {
	border := r.palette.Widget
	switch {
	case f.Focused:
		border = r.palette.Accent
	case f.Hovered:
		border = r.palette.Component
	}
	strokeRect(dst, f.Rect, border)

	pos := Point{f.Rect.X + 4, f.Rect.Y + 2}
	switch {
	case f.Text == "" && !f.Focused:
		r.drawText(dst, f.Placeholder, TextOptions{Position: pos, Color: r.palette.TextMuted})
	case f.Focused:
		r.drawText(dst, f.Text, TextOptions{Position: pos, Color: r.palette.Text})
	default:
		r.drawText(dst, f.Text, TextOptions{Position: pos, Color: r.palette.TextMuted})
	}

	if f.Focused && caret {
		w, _ := text.Measure(f.Text, r.face, 0)
		x := float32(pos.X) + float32(w) + 1
		vector.StrokeLine(dst, x, float32(f.Rect.Y+4), x, float32(f.Rect.Y+f.Rect.Height-4), 1, r.palette.Text.ToRGBA(), false)
	}
}

func (r *Renderer) drawProgress(dst *ebiten.Image, p ProgressBar, value float32, c Color) {
	level, err := p.Fill(value)
	if err != nil {
		logger().Warn().Err(err).Msg("progress value rejected")
		return
	}
	fillRect(dst, p.Bounds(), r.palette.Track)
	vector.DrawFilledRect(dst, level.X, level.Y, level.Width, level.Height, c.ToRGBA(), false)
}

func (r *Renderer) drawPanel(dst *ebiten.Image, e *Editor) {
	p := e.Panel()
	c := e.ActiveComponent()
	if c == nil {
		return
	}
	r.drawText(dst, c.Kind().String(), TextOptions{Position: Point{p.X, p.Y + 20}, Color: r.palette.Text})
	r.drawButton(dst, p.ResetState)
	r.drawButton(dst, p.AddState)
	r.drawTextField(dst, p.StateName, e.CaretVisible())
	r.drawProgress(dst, p.Pulse, e.SelectionPulse().Percentage(), r.palette.Accent)

	pos := c.EffectiveState().Position
	r.drawText(dst, fmt.Sprintf("%d states  pos %d,%d", len(c.States), pos.X, pos.Y), TextOptions{
		Position: Point{p.X, p.Y + 150},
		Color:    r.palette.TextMuted,
		Small:    true,
	})
}
