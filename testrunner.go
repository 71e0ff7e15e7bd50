package glyphboard

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	From   float64 `json:"from,omitempty"`
	To     float64 `json:"to,omitempty"`
	Text   string  `json:"text,omitempty"`
	URL    string  `json:"url,omitempty"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var knownActions = map[string]bool{
	"tap": true, "doubletap": true, "hold": true, "drag": true,
	"pinch": true, "drop": true, "background": true, "wait": true,
	"screenshot": true,
}

// GestureRunner sequences injected input across frames so editing sessions
// can be replayed. Attach to an Editor via SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a runner ready
// to be attached to an Editor via SetGestureRunner.
//
//	{"steps": [
//	  {"action": "drop", "text": "🍎", "x": 200, "y": 150},
//	  {"action": "tap", "x": 200, "y": 150},
//	  {"action": "drag", "fromX": 200, "fromY": 150, "toX": 260, "toY": 150, "frames": 6},
//	  {"action": "pinch", "x": 300, "y": 300, "from": 100, "to": 200, "frames": 5},
//	  {"action": "screenshot", "label": "after-pinch"},
//	  {"action": "hold", "x": 260, "y": 150, "frames": 90},
//	  {"action": "wait", "frames": 10}
//	]}
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner. Its step method is called from
// Editor.Update before input is processed each frame.
func (e *Editor) SetGestureRunner(runner *GestureRunner) {
	e.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Editor.Update.
func (r *GestureRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
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
	case "tap":
		e.InjectTap(st.X, st.Y)
	case "doubletap":
		e.InjectTap(st.X, st.Y)
		e.InjectTap(st.X, st.Y)
	case "hold":
		e.InjectHold(st.X, st.Y, st.Frames)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		e.InjectPinch(st.X, st.Y, st.From, st.To, st.Frames)
	case "drop":
		e.Drop(DropPayload{Kind: DropText, Text: st.Text}, Vec2{st.X, st.Y})
	case "background":
		e.Drop(DropPayload{Kind: DropURL, URL: st.URL}, Vec2{st.X, st.Y})
	case "screenshot":
		e.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
