package marionette

import (
	"errors"
	"image/color"
)

// ErrOutOfRange is returned when a fraction outside [0, 1] is passed to an
// operation that expects one (AnimatedNumber.Seek, ProgressBar.Fill).
var ErrOutOfRange = errors.New("marionette: value out of range [0, 1]")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common theme colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGray  = Color{0.5, 0.5, 0.5, 1}
)

// ToRGBA converts the color to a premultiplied color.RGBA for ebiten draw calls.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is an integer position. Puppet-space points have their origin at the
// workspace center; screen-space points at the window's top-left.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an integer axis-aligned rectangle with its origin at the top-left,
// Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the rectangle's center, rounded toward the top-left.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// CenteredOn returns a rectangle of the same size whose center is p.
func (r Rect) CenteredOn(p Point) Rect {
	r.X = p.X - r.Width/2
	r.Y = p.Y - r.Height/2
	return r
}

// Translate returns r moved by the offset d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Orientation selects the growth axis of a ProgressBar.
type Orientation uint8

const (
	Horizontal Orientation = iota // fills along X
	Vertical                      // fills along Y
)

// EventType identifies a kind of input event forwarded by the host.
type EventType uint8

const (
	EventPointerMove EventType = iota // pointer moved to (X, Y)
	EventPointerDown                  // primary button pressed at (X, Y)
	EventPointerUp                    // primary button released
	EventTextInput                    // a character was typed (Char)
	EventKeyDown                      // a recognized key was pressed (Key)
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "PointerMove"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerUp:
		return "PointerUp"
	case EventTextInput:
		return "TextInput"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Key identifies the keys the editor reacts to.
type Key uint8

const (
	KeyUnknown   Key = iota
	KeyBackspace     // deletes the last character of a focused text input
	KeyDelete        // same as KeyBackspace
	KeyEnter         // blurs the focused text input
	KeyEscape        // blurs the focused text input
)

// Event is a single input event in screen coordinates. Only the fields
// relevant to Type are set.
type Event struct {
	Type EventType
	X, Y int
	Char rune
	Key  Key
}

// Pos returns the event's pointer position.
func (e Event) Pos() Point {
	return Point{e.X, e.Y}
}

// PointerMove builds an EventPointerMove.
func PointerMove(x, y int) Event { return Event{Type: EventPointerMove, X: x, Y: y} }

// PointerDown builds an EventPointerDown.
func PointerDown(x, y int) Event { return Event{Type: EventPointerDown, X: x, Y: y} }

// PointerUp builds an EventPointerUp.
func PointerUp() Event { return Event{Type: EventPointerUp} }

// TextInput builds an EventTextInput.
func TextInput(r rune) Event { return Event{Type: EventTextInput, Char: r} }

// KeyDown builds an EventKeyDown.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }
