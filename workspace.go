package marionette

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slideAnim holds active slide tweens for the workspace center.
type slideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Workspace is the viewport region puppets are edited in. Puppet-space
// coordinates have their origin at the workspace center; every conversion to
// and from screen space goes through the current Rect so hit-testing and
// drawing always agree.
type Workspace struct {
	Rect Rect

	slide *slideAnim
}

// NewWorkspace returns a width×height workspace centered in viewport.
func NewWorkspace(width, height int, viewport Rect) *Workspace {
	return &Workspace{
		Rect: Rect{Width: width, Height: height}.CenteredOn(viewport.Center()),
	}
}

// Center returns the screen-space position of the puppet-space origin.
func (w *Workspace) Center() Point {
	return w.Rect.Center()
}

// ToScreen converts a puppet-space point to screen space.
func (w *Workspace) ToScreen(p Point) Point {
	return p.Add(w.Center())
}

// ToScreenRect converts a puppet-space rectangle to screen space.
func (w *Workspace) ToScreenRect(r Rect) Rect {
	return r.Translate(w.Center())
}

// ToPuppet converts a screen-space point to puppet space.
func (w *Workspace) ToPuppet(p Point) Point {
	return p.Sub(w.Center())
}

// CenterOn moves the workspace immediately so its center is at c, cancelling
// any slide in progress.
func (w *Workspace) CenterOn(c Point) {
	w.slide = nil
	w.Rect = w.Rect.CenteredOn(c)
}

// SlideTo animates the workspace center to c over durationMs.
func (w *Workspace) SlideTo(c Point, durationMs float32, easeFn ease.TweenFunc) {
	if durationMs <= 0 {
		w.CenterOn(c)
		return
	}
	from := w.Center()
	w.slide = &slideAnim{
		tweenX: gween.New(float32(from.X), float32(c.X), durationMs, easeFn),
		tweenY: gween.New(float32(from.Y), float32(c.Y), durationMs, easeFn),
	}
}

// Sliding reports whether a slide is in progress.
func (w *Workspace) Sliding() bool {
	return w.slide != nil
}

// update advances the slide animation. Called from Editor.Process.
func (w *Workspace) update(deltaMs float32) {
	if w.slide == nil || deltaMs <= 0 {
		return
	}
	c := w.Center()
	if !w.slide.doneX {
		val, done := w.slide.tweenX.Update(deltaMs)
		c.X = int(math.Round(float64(val)))
		w.slide.doneX = done
	}
	if !w.slide.doneY {
		val, done := w.slide.tweenY.Update(deltaMs)
		c.Y = int(math.Round(float64(val)))
		w.slide.doneY = done
	}
	w.Rect = w.Rect.CenteredOn(c)
	if w.slide.doneX && w.slide.doneY {
		w.slide = nil
	}
}
