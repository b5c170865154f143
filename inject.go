package marionette

// InjectPress queues a pointer press at the given screen coordinates. Injected
// events are consumed one per frame by Frame, in place of real input.
func (e *Editor) InjectPress(x, y int) {
	e.injectQueue = append(e.injectQueue, PointerDown(x, y))
}

// InjectMove queues a pointer move to the given screen coordinates.
func (e *Editor) InjectMove(x, y int) {
	e.injectQueue = append(e.injectQueue, PointerMove(x, y))
}

// InjectRelease queues a pointer release.
func (e *Editor) InjectRelease() {
	e.injectQueue = append(e.injectQueue, PointerUp())
}

// InjectClick queues a move, press and release at the same coordinates.
// Consumes three frames.
func (e *Editor) InjectClick(x, y int) {
	e.InjectMove(x, y)
	e.InjectPress(x, y)
	e.InjectRelease()
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, a final move to (toX, toY) and a release. Minimum
// frames is 2.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectMove(fromX, fromY)
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + int(float64(toX-fromX)*t)
		y := fromY + int(float64(toY-fromY)*t)
		e.InjectMove(x, y)
	}
	e.InjectMove(toX, toY)
	e.InjectRelease()
}

// InjectText queues one text event per rune of s.
func (e *Editor) InjectText(s string) {
	for _, r := range s {
		e.injectQueue = append(e.injectQueue, TextInput(r))
	}
}

// InjectKey queues a key press.
func (e *Editor) InjectKey(k Key) {
	e.injectQueue = append(e.injectQueue, KeyDown(k))
}

// Pending returns the number of queued injected events.
func (e *Editor) Pending() int {
	return len(e.injectQueue)
}

// processInjected pops one injected event and handles it. It reports whether
// an event was consumed.
func (e *Editor) processInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	e.HandleEvent(ev)
	return true
}
