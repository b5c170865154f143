package marionette

import (
	"strings"
	"testing"
)

// runScript drives e one frame at a time until s is done.
func runScript(t *testing.T, e *Editor, s *Script) {
	t.Helper()
	e.SetScript(s)
	for i := 0; i < 1000; i++ {
		e.Frame(16, nil)
		if s.Done() {
			return
		}
	}
	t.Fatal("script did not finish within 1000 frames")
}

func TestLoadScriptYAML(t *testing.T) {
	s, err := LoadScript([]byte(`
steps:
  - {action: click, x: 60, y: 140}
  - {action: drag, fromX: 400, fromY: 400, toX: 420, toY: 410, frames: 4}
  - {action: type, text: "hi"}
  - {action: key, key: Enter}
  - {action: wait, frames: 3}
`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s.steps) != 5 {
		t.Fatalf("got %d steps, want 5", len(s.steps))
	}
	if s.steps[1].ToX != 420 || s.steps[1].Frames != 4 {
		t.Errorf("drag step = %+v", s.steps[1])
	}
	if s.Done() {
		t.Error("new script should not be done")
	}
}

func TestLoadScriptJSON(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 1, "y": 2}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.steps[0].X != 1 || s.steps[0].Y != 2 {
		t.Errorf("click step = %+v", s.steps[0])
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid", "steps: [", "parse script"},
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps: [{action: jump}]", "unknown action"},
		{"unknown key", "steps: [{action: key, key: tab}]", "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestScriptClickSelectsLayer(t *testing.T) {
	e := newTestEditor(t)
	s, err := LoadScript([]byte("steps:\n  - {action: click, x: 60, y: 140}\n"))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, s)

	if e.ActiveKind() != KindEyes {
		t.Errorf("ActiveKind = %v, want Eyes", e.ActiveKind())
	}
	if e.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", e.Pending())
	}
}

func TestScriptDragMovesComponent(t *testing.T) {
	e := newTestEditor(t)
	s, err := LoadScript([]byte(`
steps:
  - {action: drag, fromX: 400, fromY: 400, toX: 420, toY: 410, frames: 5}
`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, s)

	if got := e.Puppet().Component(KindHat).EffectiveState().Position; got != (Point{20, 10}) {
		t.Errorf("Hat position = %v, want (20,10)", got)
	}
	if e.Dragging() {
		t.Error("drag should end with the release")
	}
}

func TestScriptRenamesState(t *testing.T) {
	e := newTestEditor(t)
	name := e.Panel().StateName.Rect.Center()
	s, err := LoadScript([]byte(`
steps:
  - {action: click, x: ` + itoa(name.X) + `, y: ` + itoa(name.Y) + `}
  - {action: key, key: backspace}
  - {action: type, text: "X"}
  - {action: key, key: enter}
`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, e, s)

	hat := e.Puppet().Component(KindHat)
	if hat.DefaultState.Name != "defaulX" {
		t.Errorf("Hat state name = %q, want %q", hat.DefaultState.Name, "defaulX")
	}
	if e.Panel().StateName.Focused {
		t.Error("enter should blur the field")
	}
}

func TestScriptWaitCountsFrames(t *testing.T) {
	e := newTestEditor(t)
	s, err := LoadScript([]byte("steps:\n  - {action: wait, frames: 3}\n"))
	if err != nil {
		t.Fatal(err)
	}
	e.SetScript(s)

	frames := 0
	for !s.Done() && frames < 100 {
		e.Frame(16, nil)
		frames++
	}
	// One frame to start the wait, two more to count it down, one to finish.
	if frames != 4 {
		t.Errorf("script finished after %d frames, want 4", frames)
	}
}
