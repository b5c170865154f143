package marionette

import (
	"fmt"
	"unicode/utf8"
)

// DefaultProgressThickness is the cross-axis size of a ProgressBar.
const DefaultProgressThickness = 14

// Button is a clickable labelled rectangle.
type Button struct {
	Label   string
	Rect    Rect
	Hovered bool
}

// NewButton returns a button occupying r.
func NewButton(label string, r Rect) *Button {
	return &Button{Label: label, Rect: r}
}

// Bounds returns the button's screen rectangle.
func (b *Button) Bounds() Rect { return b.Rect }

// SetHovered sets the hover flag.
func (b *Button) SetHovered(h bool) { b.Hovered = h }

// HandleEvent updates hover state from pointer motion.
func (b *Button) HandleEvent(e Event) {
	if e.Type == EventPointerMove {
		b.Hovered = b.Rect.Contains(e.Pos())
	}
}

// Clicked reports whether e is a pointer press inside the button.
func (b *Button) Clicked(e Event) bool {
	return e.Type == EventPointerDown && b.Rect.Contains(e.Pos())
}

// TextField is a single-line text input. It takes keyboard input only while
// focused; clicking inside focuses it and clicking elsewhere blurs it.
type TextField struct {
	Text        string
	Placeholder string
	Rect        Rect
	Focused     bool
	Hovered     bool
}

// NewTextField returns an empty, unfocused field occupying r.
func NewTextField(placeholder string, r Rect) *TextField {
	return &TextField{Placeholder: placeholder, Rect: r}
}

// Bounds returns the field's screen rectangle.
func (f *TextField) Bounds() Rect { return f.Rect }

// SetHovered sets the hover flag.
func (f *TextField) SetHovered(h bool) { f.Hovered = h }

// HandleEvent applies e to the field and reports whether Text changed.
func (f *TextField) HandleEvent(e Event) bool {
	switch e.Type {
	case EventPointerDown:
		f.Focused = f.Rect.Contains(e.Pos())
	case EventPointerMove:
		f.Hovered = f.Rect.Contains(e.Pos())
	case EventKeyDown:
		if !f.Focused {
			return false
		}
		switch e.Key {
		case KeyBackspace, KeyDelete:
			if f.Text == "" {
				return false
			}
			_, size := utf8.DecodeLastRuneInString(f.Text)
			f.Text = f.Text[:len(f.Text)-size]
			return true
		case KeyEnter, KeyEscape:
			f.Focused = false
		}
	case EventTextInput:
		if !f.Focused || e.Char == 0 {
			return false
		}
		f.Text += string(e.Char)
		return true
	}
	return false
}

// RectF is a float rectangle used for sub-pixel fills.
type RectF struct {
	X, Y, Width, Height float32
}

// ProgressBar describes a bar that fills along its length as a value moves
// from 0 to 1. Reversed bars fill from the far end (bottom or right).
type ProgressBar struct {
	Pos         Point
	Length      int
	Thickness   int
	Orientation Orientation
	Reversed    bool
}

// Bounds returns the full track rectangle.
func (p ProgressBar) Bounds() Rect {
	t := p.Thickness
	if t <= 0 {
		t = DefaultProgressThickness
	}
	if p.Orientation == Vertical {
		return Rect{p.Pos.X, p.Pos.Y, t, p.Length}
	}
	return Rect{p.Pos.X, p.Pos.Y, p.Length, t}
}

// Fill returns the filled portion of the track for value. Values outside
// [0, 1] return an error wrapping ErrOutOfRange.
func (p ProgressBar) Fill(value float32) (RectF, error) {
	if !(value >= 0 && value <= 1) {
		return RectF{}, fmt.Errorf("progress %v: %w", value, ErrOutOfRange)
	}
	b := p.Bounds()
	level := value * float32(p.Length)

	r := RectF{X: float32(b.X), Y: float32(b.Y), Width: float32(b.Width), Height: float32(b.Height)}
	if p.Orientation == Vertical {
		r.Height = level
		if p.Reversed {
			r.Y = float32(b.Y+b.Height) - level
		}
	} else {
		r.Width = level
		if p.Reversed {
			r.X = float32(b.X+b.Width) - level
		}
	}
	return r, nil
}
