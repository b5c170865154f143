package marionette

import "github.com/tanema/gween/ease"

// Animation settings for editor feedback.
const (
	selectionPulseMs = 600
	caretBlinkMs     = 500
	workspaceSlideMs = 250
)

// Editor owns a puppet and the interaction state around it: the active
// selection, hover, the drag gesture, the layer column and config panel, and
// any timers and animations ticked each frame.
//
// Drive it once per frame, in order: Process with the measured delta, then
// HandleEvent for each queued input event, then draw from the read-only
// accessors. Frame does all of this for the host.
type Editor struct {
	cfg      Config
	viewport Rect

	puppet    *Puppet
	active    ComponentKind
	drag      *DragState
	hovered   ComponentKind
	hasHover  bool
	workspace *Workspace
	layers    []*LayerButton
	panel     *ConfigPanel

	pulse   *AnimatedNumber
	caret   *Timer
	caretOn bool

	timers     []*Timer
	animations []Animated

	injectQueue []Event
	script      *Script
	screenshots []string
}

// NewEditor creates an editor with a fresh puppet, sized for the window in cfg.
func NewEditor(cfg Config) *Editor {
	if cfg.HitBoxSize <= 0 {
		cfg.HitBoxSize = DefaultHitBoxSize
	}
	viewport := Rect{Width: cfg.Width, Height: cfg.Height}
	puppet := NewPuppet()

	e := &Editor{
		cfg:       cfg,
		viewport:  viewport,
		puppet:    puppet,
		active:    DefaultComponentKind,
		workspace: NewWorkspace(cfg.Workspace.Width, cfg.Workspace.Height, viewport),
		layers:    newLayerButtons(puppet),
		panel:     NewConfigPanel(cfg.Width-cfg.PanelWidth, 0, cfg.PanelWidth),
	}

	e.pulse = NewAnimatedNumber(0.35, 1, selectionPulseMs)
	e.pulse.Loop = true
	e.pulse.Easing = ease.InOutQuad
	e.pulse.Play()

	e.caret = NewTimer(caretBlinkMs)
	e.caret.Loop = true
	e.caret.Play()

	e.panel.Sync(e.ActiveComponent())
	return e
}

// AddTimer registers t to be ticked by Process.
func (e *Editor) AddTimer(t *Timer) {
	e.timers = append(e.timers, t)
}

// AddAnimation registers a to be ticked by Process.
func (e *Editor) AddAnimation(a Animated) {
	e.animations = append(e.animations, a)
}

// Process advances timers, animations and the workspace slide by deltaMs.
func (e *Editor) Process(deltaMs float32) {
	if e.script != nil {
		e.script.step(e)
	}

	e.workspace.update(deltaMs)

	if e.caret.IsTriggered() {
		e.caretOn = !e.caretOn
	}
	e.caret.Tick(deltaMs)

	if err := e.pulse.Tick(deltaMs); err != nil {
		logger().Error().Err(err).Msg("selection pulse tick failed")
	}
	for _, t := range e.timers {
		t.Tick(deltaMs)
	}
	for _, a := range e.animations {
		if err := a.Tick(deltaMs); err != nil {
			logger().Error().Err(err).Msg("animation tick failed")
		}
	}
}

// Frame runs one frame: Process, then either one injected event or every
// real event in arrival order.
func (e *Editor) Frame(deltaMs float32, events []Event) {
	e.Process(deltaMs)
	if e.processInjected() {
		return
	}
	for _, ev := range events {
		e.HandleEvent(ev)
	}
}

// HandleEvent applies a single input event.
func (e *Editor) HandleEvent(ev Event) {
	switch ev.Type {
	case EventPointerMove:
		e.updateHover(ev.Pos())
		e.updateDrag(ev.Pos())
	case EventPointerDown:
		e.selectLayerAt(ev.Pos())
		e.pressComponentAt(ev.Pos())
	case EventPointerUp:
		if e.drag != nil {
			logger().Debug().Stringer("component", e.active).Msg("drag ended")
			e.drag = nil
		}
	}
	e.panel.HandleEvent(ev, e.ActiveComponent())
}

// Resize adapts the layout to a new window size. The workspace slides to the
// new center.
func (e *Editor) Resize(width, height int) {
	if width == e.viewport.Width && height == e.viewport.Height {
		return
	}
	e.viewport = Rect{Width: width, Height: height}
	e.workspace.SlideTo(e.viewport.Center(), workspaceSlideMs, ease.OutCubic)
	e.panel.MoveTo(width-e.cfg.PanelWidth, 0, e.cfg.PanelWidth)
}

// updateHover marks the first region under p as hovered, checking layer
// buttons before puppet components.
func (e *Editor) updateHover(p Point) {
	layerHit := updateHover(e.layers, p) >= 0

	e.hasHover = false
	if layerHit {
		return
	}
	comps := e.puppet.Components()
	if i := hitIndex(e.componentScreenRects(comps), p); i >= 0 {
		e.hovered = comps[i].Kind()
		e.hasHover = true
	}
}

// updateDrag moves the active component by the pointer's step since the
// last motion event.
func (e *Editor) updateDrag(p Point) {
	if e.drag == nil {
		return
	}
	c := e.ActiveComponent()
	d := e.drag.Step(p)
	if c == nil {
		return
	}
	s := c.EffectiveState()
	s.Position = s.Position.Add(d)
}

func (e *Editor) selectLayerAt(p Point) {
	for _, b := range e.layers {
		if b.Rect.Contains(p) {
			e.setActive(b.Kind)
			return
		}
	}
}

// pressComponentAt selects the first component under p and starts dragging it.
func (e *Editor) pressComponentAt(p Point) {
	comps := e.puppet.Components()
	i := hitIndex(e.componentScreenRects(comps), p)
	if i < 0 {
		return
	}
	e.setActive(comps[i].Kind())
	e.drag = StartDrag(p)
	logger().Debug().
		Stringer("component", e.active).
		Int("x", p.X).Int("y", p.Y).
		Msg("drag started")
}

func (e *Editor) setActive(kind ComponentKind) {
	if kind == e.active {
		return
	}
	e.active = kind
	e.panel.Sync(e.ActiveComponent())
}

func (e *Editor) componentScreenRects(comps []*Component) []Rect {
	rects := make([]Rect, len(comps))
	for i, c := range comps {
		rects[i] = e.workspace.ToScreenRect(c.Rect(e.cfg.HitBoxSize))
	}
	return rects
}

// Config returns the settings the editor was created with.
func (e *Editor) Config() Config { return e.cfg }

// Viewport returns the current window rectangle.
func (e *Editor) Viewport() Rect { return e.viewport }

// Puppet returns the edited puppet.
func (e *Editor) Puppet() *Puppet { return e.puppet }

// ActiveKind returns the selected component kind.
func (e *Editor) ActiveKind() ComponentKind { return e.active }

// ActiveComponent returns the selected component.
func (e *Editor) ActiveComponent() *Component { return e.puppet.Component(e.active) }

// Dragging reports whether a drag gesture is in progress.
func (e *Editor) Dragging() bool { return e.drag != nil }

// DragState returns the current drag gesture, or nil.
func (e *Editor) DragState() *DragState { return e.drag }

// LayerButtons returns the layer column buttons, top to bottom.
func (e *Editor) LayerButtons() []*LayerButton { return e.layers }

// HoveredComponent returns the component kind under the pointer, if any.
func (e *Editor) HoveredComponent() (ComponentKind, bool) { return e.hovered, e.hasHover }

// ComponentScreenRect returns the hit box of kind in screen space.
func (e *Editor) ComponentScreenRect(kind ComponentKind) Rect {
	c := e.puppet.Component(kind)
	if c == nil {
		return Rect{}
	}
	return e.workspace.ToScreenRect(c.Rect(e.cfg.HitBoxSize))
}

// Workspace returns the puppet workspace.
func (e *Editor) Workspace() *Workspace { return e.workspace }

// Panel returns the config panel.
func (e *Editor) Panel() *ConfigPanel { return e.panel }

// SelectionPulse returns the selection highlight animation.
func (e *Editor) SelectionPulse() *AnimatedNumber { return e.pulse }

// CaretVisible reports whether a focused text field should draw its caret.
func (e *Editor) CaretVisible() bool { return e.caretOn }
