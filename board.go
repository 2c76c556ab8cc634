package sticker

import (
	"errors"
	"image"
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// slotState is the per-slot interaction state that lives beside the
// collection record. It is index-aligned with Collection.Overlays.
type slotState struct {
	gesture  Gesture
	controls bool // handles rendered and hit-testable
	fade     controlsFade

	// outside is the document pointer-down subscription held while the slot
	// is visible.
	outside Subscription

	// closeArmed is set by a press on the close button and consumed by the
	// matching release.
	closeArmed bool

	image *ebiten.Image
}

// Board is the top-level object: it owns the overlay collection, the
// per-overlay interaction state and the window and document surfaces, and
// turns raw pointer events into geometry patches.
//
// Board is single-threaded. Every method must be called from the goroutine
// that runs the ebiten game loop.
type Board struct {
	cfg        Config
	collection *Collection
	slots      []slotState

	window   *Surface
	document *Surface

	viewportW, viewportH float64

	// Pointer bookkeeping for hover enter/leave and press/release edges.
	pointerDown bool
	hover       int // slot index under the pointer, or -1
	lastX       float64
	lastY       float64

	pressFilter    func(x, y float64) bool
	pressSwallowed bool

	log   *slog.Logger
	debug bool
	hud   hud

	onNotice func(string)
	onChange func(Overlay)
	onDrop   func(fs.FS)

	// ClearColor fills the screen before overlays are drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewBoard creates a board with the given configuration. Settings that
// fail Validate fall back to their defaults. The viewport defaults to the
// configured window size until SetViewport is called.
func NewBoard(cfg Config) *Board {
	cfg = cfg.withDefaults()
	return &Board{
		cfg:           cfg,
		collection:    NewCollection(cfg.Cap),
		window:        newSurface("window"),
		document:      newSurface("document"),
		viewportW:     float64(cfg.Window.Width),
		viewportH:     float64(cfg.Window.Height),
		hover:         -1,
		log:           discardLogger,
		ScreenshotDir: "screenshots",
	}
}

// Config returns the board's configuration.
func (b *Board) Config() Config {
	return b.cfg
}

// Overlays returns a copy of every slot in render order, visible or not.
func (b *Board) Overlays() []Overlay {
	return append([]Overlay(nil), b.collection.Overlays()...)
}

// Get returns the overlay with the given ID.
func (b *Board) Get(id ID) (Overlay, bool) {
	return b.collection.Get(id)
}

// VisibleCount returns the number of overlays currently shown.
func (b *Board) VisibleCount() int {
	return b.collection.VisibleCount()
}

// Window returns the surface carrying move/up while a gesture is active.
func (b *Board) Window() *Surface {
	return b.window
}

// Document returns the surface carrying pointer-down for outside clicks.
func (b *Board) Document() *Surface {
	return b.document
}

// SetViewport sets the page size used to centre new overlays.
func (b *Board) SetViewport(w, h float64) {
	b.viewportW = w
	b.viewportH = h
}

// OnNotice registers the callback that surfaces user-facing notices such as
// the capacity message. Only one callback is kept.
func (b *Board) OnNotice(fn func(msg string)) {
	b.onNotice = fn
}

// OnChange registers a callback fired after every applied patch, add or
// close, with the resulting record.
func (b *Board) OnChange(fn func(Overlay)) {
	b.onChange = fn
}

// Notify surfaces a user-facing notice through the OnNotice callback.
func (b *Board) Notify(msg string) {
	b.log.Info("notice", "message", msg)
	if b.onNotice != nil {
		b.onNotice(msg)
	}
}

// --- Collection operations ---

// AddOrReuse places an overlay for a validated image payload. On
// *CapacityError the notice is raised and nothing changes.
func (b *Board) AddOrReuse(src string, naturalW, naturalH float64) (ID, error) {
	id, i, err := b.collection.AddOrReuse(src, naturalW, naturalH, Placement{
		ViewportWidth:  b.viewportW,
		ViewportHeight: b.viewportH,
		DefaultWidth:   b.cfg.DefaultWidth,
	})
	if err != nil {
		var capErr *CapacityError
		if errors.As(err, &capErr) {
			b.Notify(capErr.Error())
		} else {
			b.log.Warn("add overlay", "src", src, "error", err)
		}
		return 0, err
	}

	for len(b.slots) <= i {
		b.slots = append(b.slots, slotState{})
	}
	b.resetSlot(i)
	b.watchOutside(i, id)

	o := b.collection.Overlays()[i]
	b.log.Info("overlay placed", "overlay", id.String(), "slot", i, "width", o.Width, "height", o.Height)
	b.changed(o)
	return id, nil
}

// AddImage decodes img's natural size, places an overlay for it and keeps a
// GPU copy for rendering. img must not be nil.
func (b *Board) AddImage(src string, img image.Image) (ID, error) {
	if img == nil {
		panic("sticker: AddImage with nil image")
	}
	size := img.Bounds().Size()
	id, err := b.AddOrReuse(src, float64(size.X), float64(size.Y))
	if err != nil {
		return 0, err
	}
	st := &b.slots[b.collection.index(id)]
	st.image = ebiten.NewImageFromImage(img)
	return id, nil
}

// UpdatePatch applies a partial update to the overlay with the given ID. An
// unknown ID is logged and returned, never fatal.
func (b *Board) UpdatePatch(id ID, p Patch) error {
	o, err := b.collection.UpdatePatch(id, p)
	if err != nil {
		b.log.Warn("update overlay", "error", err)
		return err
	}
	i := b.collection.index(id)
	if o.IsVisible {
		b.watchOutside(i, id)
	} else {
		b.hide(i)
	}
	b.changed(o)
	return nil
}

// Close marks the overlay invisible, ending any gesture on it.
func (b *Board) Close(id ID) error {
	return b.UpdatePatch(id, VisibilityPatch(false))
}

// GestureState returns the interaction state of the overlay.
func (b *Board) GestureState(id ID) GestureState {
	if i := b.collection.index(id); i >= 0 && i < len(b.slots) {
		return b.slots[i].gesture.State()
	}
	return GestureIdle
}

// ControlsVisible reports whether the overlay's handles are shown.
func (b *Board) ControlsVisible(id ID) bool {
	if i := b.collection.index(id); i >= 0 && i < len(b.slots) {
		return b.slots[i].controls
	}
	return false
}

func (b *Board) changed(o Overlay) {
	if b.onChange != nil {
		b.onChange(o)
	}
}

// resetSlot clears the interaction state of slot i ahead of reuse.
func (b *Board) resetSlot(i int) {
	st := &b.slots[i]
	st.gesture.Reset()
	st.outside.Remove()
	if st.image != nil {
		st.image.Deallocate()
	}
	*st = slotState{}
	if b.hover == i {
		b.hover = -1
	}
}

// hide forces slot i inert: controls off, gesture idle, document listener
// released.
func (b *Board) hide(i int) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	st := &b.slots[i]
	if st.gesture.Active() {
		b.logTransition(b.collection.Overlays()[i].ID, st.gesture.State(), GestureIdle)
	}
	st.gesture.Reset()
	st.outside.Remove()
	st.outside = Subscription{}
	st.closeArmed = false
	b.setControls(i, false)
	if b.hover == i {
		b.hover = -1
	}
}

// watchOutside subscribes slot i to document pointer-down if it is not
// already subscribed.
func (b *Board) watchOutside(i int, id ID) {
	st := &b.slots[i]
	if st.outside.s != nil {
		return
	}
	st.outside = b.document.On(EventPointerDown, func(ctx PointerContext) {
		b.outsidePress(id, ctx)
	})
}

func (b *Board) setControls(i int, on bool) {
	st := &b.slots[i]
	if st.controls == on {
		return
	}
	st.controls = on
	st.fade.retarget(on, b.cfg.ControlsFadeSeconds)
}

// activeSlot returns the index of the slot mid-gesture, or -1.
func (b *Board) activeSlot() int {
	for i := range b.slots {
		if b.slots[i].gesture.Active() {
			return i
		}
	}
	return -1
}

// --- Hit testing ---

// hitTest finds the topmost renderable overlay at (x, y) and the handle hit.
// Handles are only hit-testable while the overlay's controls are visible.
func (b *Board) hitTest(x, y float64) (int, Handle) {
	overlays := b.collection.Overlays()
	for i := len(overlays) - 1; i >= 0; i-- {
		o := overlays[i]
		if !o.Renderable() || i >= len(b.slots) {
			continue
		}
		lx, ly := WorldToLocal(o, x, y)
		if b.slots[i].controls {
			if h := b.handleAt(o, lx, ly); h != HandleNone {
				return i, h
			}
		}
		if lx >= 0 && lx <= o.Width && ly >= 0 && ly <= o.Height {
			return i, HandleBody
		}
	}
	return -1, HandleNone
}

// handleAt tests the knobs in stacking order: close above resize and rotate.
func (b *Board) handleAt(o Overlay, lx, ly float64) Handle {
	hc := b.cfg.Handles
	for _, k := range handleLayout(o, hc) {
		dx := lx - k.center.X
		dy := ly - k.center.Y
		r := k.radius + hc.HitSlop
		if dx*dx+dy*dy <= r*r {
			return k.handle
		}
	}
	return HandleNone
}

type knob struct {
	handle Handle
	center Vec2 // overlay-local
	radius float64
}

// handleLayout returns the knobs of o in overlay-local coordinates, topmost
// first.
func handleLayout(o Overlay, hc HandleConfig) [3]knob {
	return [3]knob{
		{HandleClose, Vec2{o.Width - hc.CloseInset - hc.CloseRadius, hc.CloseInset + hc.CloseRadius}, hc.CloseRadius},
		{HandleResize, Vec2{o.Width, o.Height}, hc.ResizeRadius},
		{HandleRotate, Vec2{o.Width / 2, -hc.RotateOffset}, hc.RotateRadius},
	}
}

// --- Pointer entry points ---

// PointerDown handles a primary-button press at page coordinates (x, y).
// Document listeners run first and hide the controls of every overlay the
// press is outside of; then the overlay under the pointer, if any, starts
// the gesture matching the handle that was hit.
func (b *Board) PointerDown(x, y float64) {
	b.pointerDown = true
	b.lastX, b.lastY = x, y

	i, h := b.hitTest(x, y)
	ctx := PointerContext{X: x, Y: y, Button: MouseButtonLeft}
	if i >= 0 {
		ctx.Target = b.collection.Overlays()[i].ID
		ctx.Handle = h
	}
	b.document.dispatch(EventPointerDown, ctx)

	if i >= 0 {
		b.press(i, h, x, y)
	}
	b.debugCheckListeners()
}

// PointerMove handles a pointer position change, pressed or not.
func (b *Board) PointerMove(x, y float64) {
	b.lastX, b.lastY = x, y
	b.updateHover(x, y)
	b.window.dispatch(EventPointerMove, PointerContext{X: x, Y: y, Button: MouseButtonLeft})
}

// PointerUp handles a primary-button release. Any gesture ends wherever the
// pointer is; the in-progress geometry is kept.
func (b *Board) PointerUp(x, y float64) {
	b.pointerDown = false
	b.lastX, b.lastY = x, y

	b.window.dispatch(EventPointerUp, PointerContext{X: x, Y: y, Button: MouseButtonLeft})

	i, h := b.hitTest(x, y)
	for j := range b.slots {
		if !b.slots[j].closeArmed {
			continue
		}
		b.slots[j].closeArmed = false
		if j == i && h == HandleClose {
			_ = b.Close(b.collection.Overlays()[j].ID)
		}
	}
	b.debugCheckListeners()
}

// press starts the gesture for handle h on slot i.
func (b *Board) press(i int, h Handle, x, y float64) {
	o := b.collection.Overlays()[i]
	st := &b.slots[i]
	b.setControls(i, true)

	switch h {
	case HandleClose:
		st.closeArmed = true
		return
	case HandleBody:
		st.gesture.BeginDrag(o, x, y)
	case HandleResize:
		st.gesture.BeginResize(o, x, y, b.cfg.MinWidth)
	case HandleRotate:
		st.gesture.BeginRotate(o, BoundingBox(o).Center(), x, y)
	default:
		return
	}
	b.logTransition(o.ID, GestureIdle, st.gesture.State())

	id := o.ID
	move := b.window.On(EventPointerMove, func(ctx PointerContext) {
		b.gestureMove(id, ctx.X, ctx.Y)
	})
	up := b.window.On(EventPointerUp, func(PointerContext) {
		b.gestureEnd(id)
	})
	st.gesture.OnRelease(func() {
		move.Remove()
		up.Remove()
	})
}

func (b *Board) gestureMove(id ID, x, y float64) {
	i := b.collection.index(id)
	if i < 0 {
		return
	}
	p, ok := b.slots[i].gesture.Update(x, y)
	if !ok {
		return
	}
	_ = b.UpdatePatch(id, p)
}

func (b *Board) gestureEnd(id ID) {
	i := b.collection.index(id)
	if i < 0 {
		return
	}
	g := &b.slots[i].gesture
	b.logTransition(id, g.State(), GestureIdle)
	g.Reset()
	// The pointer may have left the overlay mid-gesture; controls then stay
	// until the next leave or outside press, as with any hover.
}

// outsidePress is the document pointer-down handler of one overlay.
func (b *Board) outsidePress(id ID, ctx PointerContext) {
	if ctx.Target == id {
		return
	}
	i := b.collection.index(id)
	if i < 0 {
		return
	}
	st := &b.slots[i]
	if st.gesture.Active() {
		b.logTransition(id, st.gesture.State(), GestureIdle)
	}
	st.gesture.Reset()
	b.setControls(i, false)
}

// updateHover fires enter/leave when the overlay under the pointer changes.
func (b *Board) updateHover(x, y float64) {
	i, _ := b.hitTest(x, y)
	if i == b.hover {
		return
	}
	if prev := b.hover; prev >= 0 && prev < len(b.slots) {
		if !b.slots[prev].gesture.Active() {
			b.setControls(prev, false)
		}
	}
	if i >= 0 {
		b.setControls(i, true)
	}
	b.hover = i
}
