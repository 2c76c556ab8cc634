package sticker

import (
	"math"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
steps:
  - action: screenshot
    label: initial
  - action: click
    x: 100
    y: 200
  - action: wait
    frames: 3
  - action: drag
    fromX: 1
    fromY: 2
    toX: 3
    toY: 4
    frames: 6
  - action: close
    slot: 1
`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[3].FromY != 2 || runner.steps[3].ToX != 3 || runner.steps[3].Frames != 6 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[4].Slot != 1 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScriptJSON(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "hover", "x": 5, "y": 6}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.steps[0].Action != "hover" || runner.steps[0].X != 5 {
		t.Error("step 0 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid", `steps: [`},
		{"empty", `steps: []`},
		{"unknown action", `steps: [{action: explode}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStepClickCloses(t *testing.T) {
	b := newTestBoard()
	id := addTestOverlay(t, b)

	runner, err := LoadTestScript([]byte(`
steps:
  - action: hover
    x: 585
    y: 365
  - action: click
    x: 585
    y: 365
`))
	if err != nil {
		t.Fatal(err)
	}
	b.SetTestRunner(runner)

	for frame := 0; frame < 10 && !runner.Done(); frame++ {
		runner.step(b)
		b.processInjectedInput()
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	if mustGet(t, b, id).IsVisible {
		t.Error("scripted click should close the overlay")
	}
}

func TestRunnerStepWait(t *testing.T) {
	b := newTestBoard()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}, {"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(b) // wait, counts as frame 1
	runner.step(b) // frame 2
	runner.step(b) // frame 3
	if len(b.screenshotQueue) != 0 {
		t.Fatal("screenshot queued before wait elapsed")
	}
	runner.step(b)
	if len(b.screenshotQueue) != 1 || b.screenshotQueue[0] != "x" {
		t.Errorf("screenshotQueue = %v, want [x]", b.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStepClose(t *testing.T) {
	b := newTestBoard()
	addTestOverlay(t, b)
	second := addTestOverlay(t, b)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "close", "slot": 1}, {"action": "close", "slot": 9}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(b)
	runner.step(b)

	if mustGet(t, b, second).IsVisible {
		t.Error("slot 1 should be closed")
	}
	if b.VisibleCount() != 1 {
		t.Errorf("VisibleCount() = %d, want 1", b.VisibleCount())
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

// runScript steps the runner and drains injected input until it is done.
func runScript(t *testing.T, b *Board, script string) {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	b.SetTestRunner(runner)
	for frame := 0; frame < 200 && !runner.Done(); frame++ {
		runner.step(b)
		b.processInjectedInput()
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
}

func TestRunnerStepResize(t *testing.T) {
	b := newTestBoard()
	id := addTestOverlay(t, b)

	runScript(t, b, `
steps:
  - action: resize
    slot: 0
    dx: 50
    frames: 4
`)
	o := mustGet(t, b, id)
	assertNear(t, "width", o.Width, 250)
	assertNear(t, "height", o.Height, 125)
	if b.GestureState(id) != GestureIdle {
		t.Errorf("state = %v, want idle", b.GestureState(id))
	}
}

func TestRunnerStepRotate(t *testing.T) {
	tests := []struct {
		name    string
		degrees string
		want    float64
	}{
		{"quarter turn", "90", 90},
		{"counter-clockwise", "-45", -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard()
			id := addTestOverlay(t, b)
			runScript(t, b, "steps:\n  - action: rotate\n    slot: 0\n    degrees: "+tt.degrees+"\n")
			o := mustGet(t, b, id)
			if math.Abs(o.Rotation-tt.want) > 1e-6 {
				t.Errorf("rotation = %v, want %v", o.Rotation, tt.want)
			}
			if o.Width != 200 || o.X != 400 {
				t.Errorf("rotate changed the box: %+v", o)
			}
		})
	}
}

func TestRunnerStepResizeClosedSlot(t *testing.T) {
	b := newTestBoard()
	id := addTestOverlay(t, b)
	_ = b.Close(id)

	runScript(t, b, `{"steps": [{"action": "resize", "slot": 0, "dx": 50}]}`)
	if o := mustGet(t, b, id); o.Width != 200 {
		t.Errorf("width = %v, want untouched 200", o.Width)
	}
}
