package sticker

import "math"

// GestureState is the interaction state of one overlay.
type GestureState uint8

const (
	GestureIdle     GestureState = iota // no button held on this overlay
	GestureDragging                     // body pressed; pointer deltas translate
	GestureResizing                     // resize knob pressed; horizontal delta scales
	GestureRotating                     // rotate knob pressed; angle about centre rotates
)

// String returns a short name for logging.
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GestureResizing:
		return "resizing"
	case GestureRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// anchor is captured once at gesture start. Updates are computed from the
// anchor plus the live pointer only; the live overlay is never re-read.
type anchor struct {
	// Pointer position at press time.
	mouseX, mouseY float64

	// Dragging
	x, y float64

	// Resizing
	width, height float64
	aspect        float64
	minWidth      float64

	// Rotating
	centerX, centerY float64
	startAngle       float64 // radians
	rotation         float64 // degrees
}

// Gesture is the per-overlay pointer state machine. It holds no authoritative
// geometry; every Update yields a Patch for the owning collection.
type Gesture struct {
	state  GestureState
	anchor anchor

	// release tears down whatever the owner acquired on entering a non-idle
	// state. It runs exactly once on every exit path.
	release func()
}

// State returns the current state.
func (g *Gesture) State() GestureState {
	return g.state
}

// Active reports whether a gesture is in progress.
func (g *Gesture) Active() bool {
	return g.state != GestureIdle
}

// BeginDrag enters Dragging, anchoring the overlay position and the pointer.
func (g *Gesture) BeginDrag(o Overlay, px, py float64) {
	g.Reset()
	g.state = GestureDragging
	g.anchor = anchor{mouseX: px, mouseY: py, x: o.X, y: o.Y}
}

// BeginResize enters Resizing, anchoring the overlay size and the pointer.
// minWidth is the floor applied on every update.
func (g *Gesture) BeginResize(o Overlay, px, py, minWidth float64) {
	g.Reset()
	g.state = GestureResizing
	g.anchor = anchor{
		mouseX:   px,
		mouseY:   py,
		width:    o.Width,
		height:   o.Height,
		aspect:   o.AspectRatio(),
		minWidth: minWidth,
	}
}

// BeginRotate enters Rotating. center is the overlay's bounding-box centre at
// press time.
func (g *Gesture) BeginRotate(o Overlay, center Vec2, px, py float64) {
	g.Reset()
	g.state = GestureRotating
	g.anchor = anchor{
		mouseX:     px,
		mouseY:     py,
		centerX:    center.X,
		centerY:    center.Y,
		startAngle: math.Atan2(py-center.Y, px-center.X),
		rotation:   o.Rotation,
	}
}

// OnRelease registers the teardown for the current gesture. It is replaced
// (after running the previous one) if a new gesture begins.
func (g *Gesture) OnRelease(fn func()) {
	g.release = fn
}

// Update computes the geometry patch for a pointer at (px, py). ok is false
// when idle or when no patch applies (resizing an overlay with no natural size).
func (g *Gesture) Update(px, py float64) (p Patch, ok bool) {
	a := &g.anchor
	switch g.state {
	case GestureDragging:
		return MovePatch(a.x+(px-a.mouseX), a.y+(py-a.mouseY)), true
	case GestureResizing:
		if a.aspect <= 0 {
			return Patch{}, false
		}
		w, h := resizeAspect(a.width, px-a.mouseX, a.minWidth, a.aspect)
		return SizePatch(w, h), true
	case GestureRotating:
		angle := math.Atan2(py-a.centerY, px-a.centerX)
		return RotationPatch(a.rotation + (angle-a.startAngle)*180/math.Pi), true
	}
	return Patch{}, false
}

// Reset returns to Idle, running the registered teardown if any.
func (g *Gesture) Reset() {
	g.state = GestureIdle
	g.anchor = anchor{}
	if fn := g.release; fn != nil {
		g.release = nil
		fn()
	}
}

// resizeAspect applies a horizontal delta to a width with a floor and derives
// the height from the aspect ratio.
func resizeAspect(width, dx, minWidth, aspect float64) (w, h float64) {
	w = math.Max(minWidth, width+dx)
	return w, w / aspect
}
