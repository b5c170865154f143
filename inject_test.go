package marionette

import (
	"strconv"
	"testing"
)

func itoa(n int) string { return strconv.Itoa(n) }

func TestInjectClickConsumesOneEventPerFrame(t *testing.T) {
	e := newTestEditor(t)
	e.InjectClick(60, 140)
	if e.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", e.Pending())
	}

	e.Frame(16, nil)
	if e.Pending() != 2 {
		t.Errorf("after move: Pending = %d, want 2", e.Pending())
	}
	if e.ActiveKind() != KindHat {
		t.Error("move alone should not select")
	}
	if !e.LayerButtons()[2].Hovered {
		t.Error("move should hover the Eyes layer button")
	}

	e.Frame(16, nil)
	if e.ActiveKind() != KindEyes {
		t.Errorf("after press: ActiveKind = %v, want Eyes", e.ActiveKind())
	}

	e.Frame(16, nil)
	if e.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", e.Pending())
	}
}

func TestInjectedEventsReplaceRealInput(t *testing.T) {
	e := newTestEditor(t)
	e.InjectMove(0, 0)

	e.Frame(16, []Event{PointerDown(60, 140)})
	if e.ActiveKind() != KindHat {
		t.Errorf("real press was applied while injecting: ActiveKind = %v", e.ActiveKind())
	}

	e.Frame(16, []Event{PointerDown(60, 140)})
	if e.ActiveKind() != KindEyes {
		t.Errorf("real press ignored after queue drained: ActiveKind = %v", e.ActiveKind())
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	e := newTestEditor(t)
	e.InjectDrag(0, 0, 40, 80, 5)

	want := []Event{
		PointerMove(0, 0),
		PointerDown(0, 0),
		PointerMove(10, 20),
		PointerMove(20, 40),
		PointerMove(30, 60),
		PointerMove(40, 80),
		PointerUp(),
	}
	if len(e.injectQueue) != len(want) {
		t.Fatalf("queued %d events, want %d: %+v", len(e.injectQueue), len(want), e.injectQueue)
	}
	for i, ev := range want {
		if e.injectQueue[i] != ev {
			t.Errorf("event %d = %+v, want %+v", i, e.injectQueue[i], ev)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	e := newTestEditor(t)
	e.InjectDrag(0, 0, 10, 10, 0)
	// move, press, final move, release
	if e.Pending() != 4 {
		t.Errorf("Pending = %d, want 4", e.Pending())
	}
}

func TestInjectTextAndKey(t *testing.T) {
	e := newTestEditor(t)
	e.InjectText("hé")
	e.InjectKey(KeyEnter)

	want := []Event{TextInput('h'), TextInput('é'), KeyDown(KeyEnter)}
	if len(e.injectQueue) != len(want) {
		t.Fatalf("queued %d events, want %d", len(e.injectQueue), len(want))
	}
	for i, ev := range want {
		if e.injectQueue[i] != ev {
			t.Errorf("event %d = %+v, want %+v", i, e.injectQueue[i], ev)
		}
	}
}
