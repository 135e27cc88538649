package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events and reset actions across
// update ticks for automated demos and end-to-end tests. Call Step once per
// tick before Editor.Update.
//
// Supported actions: "click" (x, y), "drag" (fromX/fromY/toX/toY, ticks),
// "wait" (ticks), "resetRotation", "resetScale", "reset".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("easel: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("easel: parse script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one tick, queueing injections on the editor.
func (r *ScriptRunner) Step(e *Editor) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Ticks)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	case "resetRotation":
		e.Controller.ResetSelected(true, false)
	case "resetScale":
		e.Controller.ResetSelected(false, true)
	case "reset":
		e.Controller.ResetSelected(true, true)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
