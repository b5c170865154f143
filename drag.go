package marionette

// DragState tracks an in-progress drag gesture. Origin is the last pointer
// position seen; each motion yields the delta from Origin and then moves
// Origin to the new position, so deltas are per-step rather than cumulative.
type DragState struct {
	Origin Point
}

// StartDrag begins a drag gesture at p.
func StartDrag(p Point) *DragState {
	return &DragState{Origin: p}
}

// Delta returns p minus the recorded origin.
func (d *DragState) Delta(p Point) Point {
	return p.Sub(d.Origin)
}

// Reset records p as the new origin.
func (d *DragState) Reset(p Point) {
	d.Origin = p
}

// Step returns the delta to p and records p as the new origin.
func (d *DragState) Step(p Point) Point {
	delta := d.Delta(p)
	d.Reset(p)
	return delta
}
