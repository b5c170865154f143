package marionette

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Animated is a value that moves toward a target as time is ticked into it.
// The Editor ticks every registered Animated once per frame.
type Animated interface {
	// Tick advances the animation by deltaMs milliseconds.
	Tick(deltaMs float32) error
	Play()
	Pause()
	// Stop halts playback and rewinds to the start.
	Stop()
	// Restart is Stop followed by Play.
	Restart()
	// Percentage returns the completed fraction in [0, 1].
	Percentage() float32
	// Seek jumps to the given completed fraction. Fractions outside [0, 1]
	// return an error wrapping ErrOutOfRange and leave the animation untouched.
	Seek(p float32) error
}

// PlayState is the playback state of an AnimatedNumber.
type PlayState uint8

const (
	Stopped  PlayState = iota // at rest; Stop rewinds to the initial value
	Playing                   // advancing on Tick
	Paused                    // halted mid-way, value preserved
	Finished                  // reached the target without looping
)

// String returns the state name.
func (s PlayState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// AnimatedNumber tweens a scalar from Initial to Target over DurationMs.
//
// Progress through the animation is stored directly rather than re-derived
// from the current value each frame, so long-running and looping animations
// do not accumulate rounding error. With the default linear easing the value
// at progress p is Initial + (Target-Initial)*p.
type AnimatedNumber struct {
	Initial    float32
	Target     float32
	DurationMs float32
	// Loop restarts from Initial each time the target is reached.
	Loop bool
	// Easing shapes the value over progress. Nil means ease.Linear.
	Easing ease.TweenFunc

	progress float32
	state    PlayState
}

var _ Animated = (*AnimatedNumber)(nil)

// NewAnimatedNumber returns a stopped animation sitting at initial.
func NewAnimatedNumber(initial, target, durationMs float32) *AnimatedNumber {
	return &AnimatedNumber{
		Initial:    initial,
		Target:     target,
		DurationMs: durationMs,
	}
}

// Value returns the current value. The endpoints are returned exactly.
func (a *AnimatedNumber) Value() float32 {
	switch {
	case a.progress <= 0:
		return a.Initial
	case a.progress >= 1:
		return a.Target
	}
	fn := a.Easing
	if fn == nil {
		fn = ease.Linear
	}
	return fn(a.progress, a.Initial, a.Target-a.Initial, 1)
}

// State returns the playback state.
func (a *AnimatedNumber) State() PlayState { return a.state }

// Playing reports whether Tick will advance the animation.
func (a *AnimatedNumber) Playing() bool { return a.state == Playing }

// Percentage returns the completed fraction in [0, 1].
func (a *AnimatedNumber) Percentage() float32 { return a.progress }

// Play starts or resumes playback. An animation whose value already equals
// its target does not start; a warning is logged instead.
func (a *AnimatedNumber) Play() {
	if a.Value() == a.Target {
		if a.state == Playing {
			a.state = Finished
		}
		logger().Warn().
			Float32("value", a.Value()).
			Msg("attempted to play a finished animation")
		return
	}
	a.state = Playing
}

// Pause halts playback and keeps the current value.
func (a *AnimatedNumber) Pause() {
	if a.state == Playing {
		a.state = Paused
	}
}

// Stop halts playback and rewinds to Initial.
func (a *AnimatedNumber) Stop() {
	a.state = Stopped
	a.progress = 0
}

// Restart rewinds to Initial and plays.
func (a *AnimatedNumber) Restart() {
	a.Stop()
	a.Play()
}

// Seek jumps to the completed fraction p.
func (a *AnimatedNumber) Seek(p float32) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("seek %v: %w", p, ErrOutOfRange)
	}
	a.progress = p
	return nil
}

// Tick advances a playing animation by deltaMs. Zero-duration and non-playing
// animations are left alone. Negative deltas cannot rewind past the start.
// Reaching the target either finishes the animation or, when looping,
// restarts it from Initial; any overshoot is discarded.
func (a *AnimatedNumber) Tick(deltaMs float32) error {
	if a.DurationMs == 0 || a.state != Playing {
		return nil
	}

	p := a.progress + deltaMs/a.DurationMs
	if p < 0 {
		p = 0
	}
	if !(p >= 1) {
		return a.Seek(p)
	}

	if err := a.Seek(1); err != nil {
		return err
	}
	if a.Loop {
		a.Restart()
		return nil
	}
	a.state = Finished
	return nil
}
