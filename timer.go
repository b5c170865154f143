package marionette

// Timer is a countdown that gates periodic effects. Create one with NewTimer,
// call Play, and Tick it once per frame with the elapsed milliseconds.
//
// IsTriggered reports the fired condition only until the next Tick, which
// clears it. Query it before ticking in the same frame:
//
//	if t.IsTriggered() {
//		// fire effect
//	}
//	t.Tick(deltaMs)
type Timer struct {
	// Loop keeps the timer active after it fires.
	Loop bool

	active     bool
	elapsedMs  float32
	durationMs float32
}

// NewTimer returns an inactive, non-looping timer with the given duration.
func NewTimer(durationMs float32) *Timer {
	return &Timer{durationMs: durationMs}
}

// Play activates the timer. Calling Play on an active timer has no effect.
func (t *Timer) Play() {
	t.active = true
}

// Stop deactivates the timer and resets its elapsed time.
func (t *Timer) Stop() {
	t.active = false
	t.elapsedMs = 0
}

// Tick advances the timer by deltaMs. Once elapsed time has reached the
// duration, the next Tick resets it to zero without adding deltaMs, and
// deactivates the timer unless Loop is set.
func (t *Timer) Tick(deltaMs float32) {
	if !t.active {
		return
	}
	if t.elapsedMs >= t.durationMs {
		if !t.Loop {
			t.active = false
		}
		t.elapsedMs = 0
		return
	}
	t.elapsedMs += deltaMs
}

// IsTriggered reports whether elapsed time has reached the duration.
func (t *Timer) IsTriggered() bool {
	return t.elapsedMs >= t.durationMs
}

// Active reports whether the timer is ticking.
func (t *Timer) Active() bool { return t.active }

// Elapsed returns the elapsed time in milliseconds.
func (t *Timer) Elapsed() float32 { return t.elapsedMs }

// Duration returns the configured duration in milliseconds.
func (t *Timer) Duration() float32 { return t.durationMs }

// Progress returns elapsed/duration clamped to [0, 1]. A zero-duration timer
// reports 1.
func (t *Timer) Progress() float32 {
	if t.durationMs <= 0 {
		return 1
	}
	p := t.elapsedMs / t.durationMs
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
