package sticker

import "testing"

func TestGestureDrag(t *testing.T) {
	var g Gesture
	g.BeginDrag(Overlay{X: 100, Y: 100}, 50, 50)
	if g.State() != GestureDragging {
		t.Fatalf("state = %v, want dragging", g.State())
	}

	p, ok := g.Update(80, 70)
	if !ok {
		t.Fatal("Update returned no patch")
	}
	o := ApplyPatch(Overlay{}, p)
	if o.X != 130 || o.Y != 120 {
		t.Errorf("position = (%v, %v), want (130, 120)", o.X, o.Y)
	}
	if p.Width != nil || p.Rotation != nil {
		t.Error("drag patch should only touch position")
	}
}

func TestGestureDragUsesAnchor(t *testing.T) {
	var g Gesture
	g.BeginDrag(Overlay{X: 0, Y: 0}, 10, 10)
	// Successive updates are absolute offsets from the anchor, not
	// accumulated deltas.
	g.Update(20, 20)
	p, _ := g.Update(15, 10)
	o := ApplyPatch(Overlay{}, p)
	if o.X != 5 || o.Y != 0 {
		t.Errorf("position = (%v, %v), want (5, 0)", o.X, o.Y)
	}
}

func TestGestureResize(t *testing.T) {
	start := Overlay{Width: 200, Height: 100, OriginalWidth: 400, OriginalHeight: 200}

	tests := []struct {
		name         string
		px, py       float64
		wantW, wantH float64
	}{
		{"grow", 350, 999, 250, 125},
		{"vertical motion ignored", 300, -500, 200, 100},
		{"shrink", 200, 200, 100, 50},
		{"clamped at floor", 0, 200, 50, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Gesture
			g.BeginResize(start, 300, 200, MinWidth)
			p, ok := g.Update(tt.px, tt.py)
			if !ok {
				t.Fatal("Update returned no patch")
			}
			o := ApplyPatch(start, p)
			assertNear(t, "width", o.Width, tt.wantW)
			assertNear(t, "height", o.Height, tt.wantH)
			if p.X != nil || p.Y != nil {
				t.Error("resize patch should not move the overlay")
			}
		})
	}
}

func TestGestureResizeKeepsAspectEveryStep(t *testing.T) {
	o := Overlay{Width: 200, Height: 200 * 7.0 / 3, OriginalWidth: 300, OriginalHeight: 700}
	want := o.OriginalHeight / o.OriginalWidth

	var g Gesture
	g.BeginResize(o, 500, 500, MinWidth)
	for _, px := range []float64{513, 557.25, 402, 111, 300.5, 999, 680.125, -40} {
		p, ok := g.Update(px, 500-px)
		if !ok {
			t.Fatalf("Update(%v) returned no patch", px)
		}
		o = ApplyPatch(o, p)
		if o.Width < MinWidth {
			t.Errorf("Update(%v): width %v below floor", px, o.Width)
		}
		assertNear(t, "height/width", o.Height/o.Width, want)
	}
}

func TestGestureResizeUnknownAspect(t *testing.T) {
	var g Gesture
	g.BeginResize(Overlay{Width: 200, Height: 100}, 0, 0, MinWidth)
	if _, ok := g.Update(50, 0); ok {
		t.Error("resize without a natural size should yield no patch")
	}
}

func TestGestureRotate(t *testing.T) {
	o := Overlay{Width: 100, Height: 100, Rotation: 10}
	center := BoundingBox(o).Center()

	var g Gesture
	// Start due east of the centre and sweep a quarter turn clockwise.
	g.BeginRotate(o, center, 150, 50)
	p, ok := g.Update(50, 150)
	if !ok {
		t.Fatal("Update returned no patch")
	}
	assertNear(t, "rotation", ApplyPatch(o, p).Rotation, 100)
}

func TestGestureRotateNotNormalized(t *testing.T) {
	o := Overlay{Width: 100, Height: 100, Rotation: 350}
	var g Gesture
	g.BeginRotate(o, Vec2{50, 50}, 150, 50)
	p, _ := g.Update(50, 150)
	assertNear(t, "rotation", *p.Rotation, 440)
}

func TestGestureIdleUpdate(t *testing.T) {
	var g Gesture
	if _, ok := g.Update(1, 1); ok {
		t.Error("idle gesture should yield no patch")
	}
}

func TestGestureResetRunsReleaseOnce(t *testing.T) {
	var g Gesture
	calls := 0
	g.BeginDrag(Overlay{}, 0, 0)
	g.OnRelease(func() { calls++ })

	g.Reset()
	g.Reset()
	if calls != 1 {
		t.Errorf("release ran %d times, want 1", calls)
	}
	if g.Active() {
		t.Error("gesture should be idle after Reset")
	}
}

func TestGestureBeginReleasesPrevious(t *testing.T) {
	var g Gesture
	released := false
	g.BeginDrag(Overlay{}, 0, 0)
	g.OnRelease(func() { released = true })

	g.BeginRotate(Overlay{Width: 10, Height: 10}, Vec2{5, 5}, 10, 5)
	if !released {
		t.Error("starting a new gesture should release the previous one")
	}
	if g.State() != GestureRotating {
		t.Errorf("state = %v, want rotating", g.State())
	}
}

func TestGestureStateString(t *testing.T) {
	tests := []struct {
		s    GestureState
		want string
	}{
		{GestureIdle, "idle"},
		{GestureDragging, "dragging"},
		{GestureResizing, "resizing"},
		{GestureRotating, "rotating"},
		{GestureState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("GestureState(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
