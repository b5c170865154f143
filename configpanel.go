package marionette

import "fmt"

// ConfigPanel edits the states of the active component. It sits against the
// right edge of the window.
type ConfigPanel struct {
	X, Y, Width int

	AddState   *Button
	ResetState *Button
	StateName  *TextField
	// Pulse shows the progress of the selection highlight animation.
	Pulse ProgressBar
}

// NewConfigPanel lays out a panel with its top-left at (x, y).
func NewConfigPanel(x, y, width int) *ConfigPanel {
	p := &ConfigPanel{
		AddState:   NewButton("Add State", Rect{}),
		ResetState: NewButton("Default", Rect{}),
		StateName:  NewTextField("State Name", Rect{}),
	}
	p.MoveTo(x, y, width)
	return p
}

// MoveTo repositions the panel and its widgets.
func (p *ConfigPanel) MoveTo(x, y, width int) {
	p.X, p.Y, p.Width = x, y, width
	p.AddState.Rect = Rect{x + width - 100, y + 20, 90, 22}
	p.ResetState.Rect = Rect{x + width - 200, y + 20, 90, 22}
	p.StateName.Rect = Rect{x, y + 80, width - 20, 30}
	p.Pulse = ProgressBar{
		Pos:         Point{x, y + 130},
		Length:      width - 20,
		Orientation: Horizontal,
	}
}

// Sync loads the effective state of c into the widgets.
func (p *ConfigPanel) Sync(c *Component) {
	if c == nil {
		p.StateName.Text = ""
		return
	}
	p.StateName.Text = c.EffectiveState().Name
}

// HandleEvent applies e to the panel widgets and, through them, to c.
func (p *ConfigPanel) HandleEvent(e Event, c *Component) {
	p.AddState.HandleEvent(e)
	p.ResetState.HandleEvent(e)

	if c != nil {
		switch {
		case p.AddState.Clicked(e):
			s := c.AddState(fmt.Sprintf("state %d", len(c.States)+1))
			c.SetActiveState(s.ID)
			p.Sync(c)
			logger().Debug().
				Stringer("component", c.Kind()).
				Str("state", s.ID).
				Msg("state added")
		case p.ResetState.Clicked(e):
			c.ClearActiveState()
			p.Sync(c)
		}
	}

	if p.StateName.HandleEvent(e) && c != nil {
		c.EffectiveState().Name = p.StateName.Text
	}
}
