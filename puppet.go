package marionette

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// DefaultHitBoxSize is the side length of a component's selection box when
// the config does not override it.
const DefaultHitBoxSize = 10

// ComponentKind identifies one visual part of a puppet. A Puppet holds
// exactly one Component per kind.
type ComponentKind uint8

const (
	KindHead ComponentKind = iota
	KindHat
	KindEyes
	KindMouth

	componentKindCount
)

// DefaultComponentKind is the kind selected when an editor starts.
const DefaultComponentKind = KindHat

// ComponentKinds returns every kind in declaration order.
func ComponentKinds() []ComponentKind {
	kinds := make([]ComponentKind, componentKindCount)
	for i := range kinds {
		kinds[i] = ComponentKind(i)
	}
	return kinds
}

// String returns the display name of the kind.
func (k ComponentKind) String() string {
	switch k {
	case KindHead:
		return "Head"
	case KindHat:
		return "Hat"
	case KindEyes:
		return "Eyes"
	case KindMouth:
		return "Mouth"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k ComponentKind) Valid() bool {
	return k < componentKindCount
}

// State is a named positional variant of a component, e.g. "mouth open".
type State struct {
	ID       string
	Name     string
	Filepath string
	// Position is in puppet space: the origin is the workspace center.
	Position Point
}

// NewState returns a state with a freshly generated ID.
func NewState(name string) State {
	return State{ID: uuid.NewString(), Name: name}
}

// Component is one part of a puppet with a default state and any number of
// additional named states.
type Component struct {
	kind   ComponentKind
	ZIndex uint8

	DefaultState State
	// ActiveState holds the ID of the state in States to use. Empty, or an ID
	// that no longer matches any state, means DefaultState.
	ActiveState string
	States      []State
}

// Kind returns the component's kind. It never changes after creation.
func (c *Component) Kind() ComponentKind { return c.kind }

// EffectiveState returns the active state, falling back to DefaultState when
// no state is active or the active ID is stale. The returned pointer may be
// used to edit the state in place.
func (c *Component) EffectiveState() *State {
	if c.ActiveState != "" {
		if s := c.State(c.ActiveState); s != nil {
			return s
		}
	}
	return &c.DefaultState
}

// State returns the state with the given ID from States, or nil.
func (c *Component) State(id string) *State {
	for i := range c.States {
		if c.States[i].ID == id {
			return &c.States[i]
		}
	}
	return nil
}

// AddState appends a new state positioned where the component currently is
// and returns it. The new state is not activated.
func (c *Component) AddState(name string) *State {
	s := NewState(name)
	s.Position = c.EffectiveState().Position
	c.States = append(c.States, s)
	return &c.States[len(c.States)-1]
}

// SetActiveState activates the state with the given ID. It reports false and
// leaves the component unchanged when no such state exists.
func (c *Component) SetActiveState(id string) bool {
	if c.State(id) == nil {
		return false
	}
	c.ActiveState = id
	return true
}

// ClearActiveState switches the component back to its default state.
func (c *Component) ClearActiveState() {
	c.ActiveState = ""
}

// RemoveState deletes the state with the given ID and reports whether it was
// found. ActiveState is left as-is; a stale ID resolves to DefaultState.
func (c *Component) RemoveState(id string) bool {
	for i := range c.States {
		if c.States[i].ID == id {
			c.States = append(c.States[:i], c.States[i+1:]...)
			return true
		}
	}
	return false
}

// Rect returns the size×size hit box centered on the effective state's
// position, in puppet space.
func (c *Component) Rect(size int) Rect {
	return Rect{Width: size, Height: size}.CenteredOn(c.EffectiveState().Position)
}

// Puppet is a composed avatar holding one Component per ComponentKind.
type Puppet struct {
	components [componentKindCount]Component
}

// NewPuppet builds a puppet with one component per kind, in declaration
// order, with z-index ascending from 0.
func NewPuppet() *Puppet {
	p := &Puppet{}
	for i := range p.components {
		c := &p.components[i]
		c.kind = ComponentKind(i)
		c.ZIndex = uint8(i)
		c.DefaultState = NewState("default")
	}
	return p
}

// Component returns the component for kind, or nil for an invalid kind.
func (p *Puppet) Component(kind ComponentKind) *Component {
	if !kind.Valid() {
		return nil
	}
	return &p.components[kind]
}

// Components returns the components in z-order, bottom first. Components
// sharing a z-index keep declaration order.
func (p *Puppet) Components() []*Component {
	out := make([]*Component, len(p.components))
	for i := range p.components {
		out[i] = &p.components[i]
	}
	slices.SortStableFunc(out, func(a, b *Component) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return out
}
