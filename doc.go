// Package marionette is the editing core of a puppet editor built on
// [Ebitengine].
//
// A [Puppet] is a fixed set of components (head, hat, eyes, mouth). Each
// [Component] has a default [State] and any number of named states, each with
// its own position. The [Editor] owns a puppet together with the interaction
// state around it: the selected component, pointer hover, drag gestures, the
// layer column and the config panel.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the editor from real input:
//
//	cfg, err := marionette.LoadConfig("marionette.yaml")
//	if err != nil {
//		cfg = marionette.DefaultConfig()
//	}
//	e := marionette.NewEditor(cfg)
//	if err := marionette.Run(e, marionette.RunOptions{}); err != nil {
//		log.Fatal(err)
//	}
//
// The editor itself never touches Ebitengine. Hosts and tests drive it with
// plain values:
//
//	e.Frame(16, []marionette.Event{
//		marionette.PointerDown(720, 450),
//		marionette.PointerMove(730, 455),
//		marionette.PointerUp(),
//	})
//
// # Frame order
//
// Each frame runs [Editor.Process] with the measured delta in milliseconds,
// then applies input with [Editor.HandleEvent], then draws. [Editor.Frame]
// does the first two. Hit testing checks layer buttons before components, and
// components in z-order; the first hit wins.
//
// # Timing
//
// [Timer] fires after a duration, optionally looping. [AnimatedNumber] tweens
// a scalar between two values with any [ease.TweenFunc]. Both are advanced by
// Process once registered with [Editor.AddTimer] or [Editor.AddAnimation].
//
// # Automation
//
// Input can be queued with [Editor.InjectClick], [Editor.InjectDrag] and
// friends, or loaded from a YAML script with [LoadScript]. Injected events
// are consumed one per frame in place of real input. [Editor.Screenshot]
// saves the next drawn frame as a PNG.
//
// [Ebitengine]: https://ebitengine.org
// [ease.TweenFunc]: https://pkg.go.dev/github.com/tanema/gween/ease#TweenFunc
package marionette
