package marionette

// Hoverable is a screen region that tracks whether the pointer is over it.
type Hoverable interface {
	Bounds() Rect
	SetHovered(bool)
}

// updateHover marks at most one item as hovered: the first, in slice order,
// whose bounds contain p. Every later item is cleared without being tested,
// so overlapping regions are never highlighted together. It returns the
// hovered index, or -1.
func updateHover[T Hoverable](items []T, p Point) int {
	hit := -1
	for i, it := range items {
		if hit >= 0 {
			it.SetHovered(false)
			continue
		}
		if it.Bounds().Contains(p) {
			hit = i
			it.SetHovered(true)
		} else {
			it.SetHovered(false)
		}
	}
	return hit
}

// hitIndex returns the index of the first rectangle containing p, or -1.
func hitIndex(rects []Rect, p Point) int {
	for i, r := range rects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

// LayerButton selects a component kind from the layer column.
type LayerButton struct {
	Button
	Kind ComponentKind
}

// Layer column layout.
const (
	layerButtonX       = 20
	layerButtonTop     = 20
	layerButtonWidth   = 80
	layerButtonHeight  = 40
	layerButtonSpacing = 10
)

// newLayerButtons lays out one button per component of p, top to bottom in
// declaration order.
func newLayerButtons(p *Puppet) []*LayerButton {
	kinds := ComponentKinds()
	buttons := make([]*LayerButton, 0, len(kinds))
	for i, kind := range kinds {
		if p.Component(kind) == nil {
			continue
		}
		y := layerButtonTop + i*(layerButtonHeight+layerButtonSpacing)
		buttons = append(buttons, &LayerButton{
			Button: Button{
				Label: kind.String(),
				Rect:  Rect{layerButtonX, y, layerButtonWidth, layerButtonHeight},
			},
			Kind: kind,
		})
	}
	return buttons
}
