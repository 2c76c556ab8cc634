package sticker

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Slot   int     `yaml:"slot,omitempty"`

	// DX is the horizontal pull on the resize knob; Degrees the clockwise
	// turn applied through the rotate knob.
	DX      float64 `yaml:"dx,omitempty"`
	Degrees float64 `yaml:"degrees,omitempty"`
}

// testScript is the top-level YAML structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected pointer events, closes and screenshots across
// frames for automated visual testing. Attach to a Board via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON, which is valid YAML) test script and
// returns a TestRunner ready to be attached via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "hover", "drag", "wait", "close", "resize", "rotate":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the board. The runner's step method
// is called from Board.Update before processInput each frame.
func (b *Board) SetTestRunner(runner *TestRunner) {
	b.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Board.Update.
func (r *TestRunner) step(b *Board) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
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
	case "screenshot":
		b.Screenshot(st.Label)
	case "click":
		b.InjectClick(st.X, st.Y)
	case "hover":
		b.InjectHover(st.X, st.Y)
	case "drag":
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "close":
		if o, ok := r.slot(b, st); ok {
			_ = b.Close(o.ID)
		}
	case "resize":
		if o, ok := r.slot(b, st); ok {
			kx, ky := LocalToWorld(o, o.Width, o.Height)
			r.knobDrag(b, o, kx, ky, kx+st.DX, ky, st.Frames)
		}
	case "rotate":
		if o, ok := r.slot(b, st); ok {
			kx, ky := LocalToWorld(o, o.Width/2, -b.cfg.Handles.RotateOffset)
			c := o.Center()
			sin, cos := math.Sincos(st.Degrees * math.Pi / 180)
			dx, dy := kx-c.X, ky-c.Y
			r.knobDrag(b, o, kx, ky, c.X+dx*cos-dy*sin, c.Y+dx*sin+dy*cos, st.Frames)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(b.injectQueue) == 0 {
		r.done = true
	}
}

// slot returns the visible overlay a step addresses, logging when there is
// none.
func (r *TestRunner) slot(b *Board, st testStep) (Overlay, bool) {
	overlays := b.collection.Overlays()
	if st.Slot < 0 || st.Slot >= len(overlays) || !overlays[st.Slot].Renderable() {
		b.log.Warn("test script: no such overlay", "action", st.Action, "slot", st.Slot)
		return Overlay{}, false
	}
	return overlays[st.Slot], true
}

// knobDrag hovers the overlay first so its knobs are hit-testable, then
// drags from the knob at (fromX, fromY) to (toX, toY).
func (r *TestRunner) knobDrag(b *Board, o Overlay, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 10
	}
	c := o.Center()
	b.InjectHover(c.X, c.Y)
	b.InjectDrag(fromX, fromY, toX, toY, frames)
}
