package marionette

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	X      int    `yaml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty"`
	FromX  int    `yaml:"fromX,omitempty"`
	FromY  int    `yaml:"fromY,omitempty"`
	ToX    int    `yaml:"toX,omitempty"`
	ToY    int    `yaml:"toY,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
	Text   string `yaml:"text,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Label  string `yaml:"label,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptKeys = map[string]Key{
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"enter":     KeyEnter,
	"escape":    KeyEscape,
}

// Script sequences injected input across frames for headless runs and
// automated checks. Attach it with Editor.SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) input script:
//
//	steps:
//	  - {action: click, x: 60, y: 40}
//	  - {action: drag, fromX: 720, fromY: 450, toX: 760, toY: 470, frames: 5}
//	  - {action: type, text: "mouth open"}
//	  - {action: key, key: enter}
//	  - {action: wait, frames: 30}
//	  - {action: screenshot, label: renamed}
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "drag", "type", "wait", "screenshot":
		case "key":
			if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its steps are queued from Process.
func (e *Editor) SetScript(s *Script) {
	e.script = s
}

// Done reports whether every step has run and its events drained.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(e *Editor) {
	if s.done {
		return
	}
	if len(e.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	logger().Debug().Int("step", s.cursor).Str("action", st.Action).Msg("script step")

	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "type":
		e.InjectText(st.Text)
	case "key":
		e.InjectKey(scriptKeys[strings.ToLower(st.Key)])
	case "screenshot":
		e.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	}
}
