package sticker

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Control colors. Knob fills are drawn at 70% opacity over a white outline.
var (
	resizeKnobColor = Color{R: 168.0 / 255, G: 85.0 / 255, B: 247.0 / 255, A: 0.7}
	rotateKnobColor = Color{R: 236.0 / 255, G: 72.0 / 255, B: 153.0 / 255, A: 0.7}
	closeKnobColor  = colorFrom(colornames.Red).withAlpha(0.7)
	outlineColor    = colorFrom(colornames.White)
	borderColor     = colorFrom(colornames.White).withAlpha(0.5)
)

// Draw renders every visible overlay in slot order, then flushes queued
// screenshots.
func (b *Board) Draw(screen *ebiten.Image) {
	if b.ClearColor.A > 0 {
		screen.Fill(b.ClearColor.toRGBA())
	}
	overlays := b.collection.Overlays()
	for i := range overlays {
		o := overlays[i]
		if !o.Renderable() || i >= len(b.slots) {
			continue
		}
		st := &b.slots[i]
		if st.image != nil {
			drawOverlayImage(screen, st.image, o)
		}
		if alpha := st.fade.alpha; alpha > 0 {
			b.drawControls(screen, o, alpha)
		}
	}
	b.drawHUD(screen)
	b.flushScreenshots(screen)
}

// overlayGeoM maps image pixels onto the rotated overlay box.
func overlayGeoM(o Overlay, srcW, srcH int) ebiten.GeoM {
	var g ebiten.GeoM
	if srcW > 0 && srcH > 0 {
		g.Scale(o.Width/float64(srcW), o.Height/float64(srcH))
	}
	m := overlayTransform(o)
	var world ebiten.GeoM
	world.SetElement(0, 0, m[0])
	world.SetElement(0, 1, m[2])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 0, m[1])
	world.SetElement(1, 1, m[3])
	world.SetElement(1, 2, m[5])
	g.Concat(world)
	return g
}

func drawOverlayImage(dst, img *ebiten.Image, o Overlay) {
	size := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = overlayGeoM(o, size.X, size.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawControls draws the dashed border and the three knobs at the given
// opacity.
func (b *Board) drawControls(dst *ebiten.Image, o Overlay, alpha float64) {
	hc := b.cfg.Handles
	m := overlayTransform(o)

	corners := [4]Vec2{{0, 0}, {o.Width, 0}, {o.Width, o.Height}, {0, o.Height}}
	for i := range corners {
		a := corners[i]
		c := corners[(i+1)%len(corners)]
		ax, ay := transformPoint(m, a.X, a.Y)
		cx, cy := transformPoint(m, c.X, c.Y)
		drawDashedLine(dst, ax, ay, cx, cy, hc.BorderDash, hc.BorderStrokeWidth, borderColor.withAlpha(alpha))
	}

	for _, k := range handleLayout(o, hc) {
		x, y := transformPoint(m, k.center.X, k.center.Y)
		switch k.handle {
		case HandleResize:
			drawKnob(dst, x, y, k.radius, resizeKnobColor.withAlpha(alpha), outlineColor.withAlpha(alpha))
		case HandleRotate:
			drawKnob(dst, x, y, k.radius, rotateKnobColor.withAlpha(alpha), outlineColor.withAlpha(alpha))
		case HandleClose:
			drawKnob(dst, x, y, k.radius, closeKnobColor.withAlpha(alpha), closeKnobColor.withAlpha(alpha))
			drawCross(dst, m, k.center, k.radius*0.4, outlineColor.withAlpha(alpha))
		}
	}
}

func drawKnob(dst *ebiten.Image, x, y, r float64, fill, outline Color) {
	vector.FillCircle(dst, float32(x), float32(y), float32(r), fill.toRGBA(), true)
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), 1, outline.toRGBA(), true)
}

// drawCross draws the close "X" in overlay-local space so it rotates with
// the overlay.
func drawCross(dst *ebiten.Image, m [6]float64, c Vec2, half float64, clr Color) {
	x0, y0 := transformPoint(m, c.X-half, c.Y-half)
	x1, y1 := transformPoint(m, c.X+half, c.Y+half)
	x2, y2 := transformPoint(m, c.X+half, c.Y-half)
	x3, y3 := transformPoint(m, c.X-half, c.Y+half)
	rgba := clr.toRGBA()
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 2, rgba, true)
	vector.StrokeLine(dst, float32(x2), float32(y2), float32(x3), float32(y3), 2, rgba, true)
}

// drawDashedLine strokes alternating dash/gap segments of length dash.
func drawDashedLine(dst *ebiten.Image, x0, y0, x1, y1, dash, width float64, clr Color) {
	rgba := clr.toRGBA()
	length := math.Hypot(x1-x0, y1-y0)
	if dash <= 0 || length == 0 {
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), rgba, true)
		return
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length
	for t := 0.0; t < length; t += 2 * dash {
		end := math.Min(t+dash, length)
		vector.StrokeLine(dst,
			float32(x0+ux*t), float32(y0+uy*t),
			float32(x0+ux*end), float32(y0+uy*end),
			float32(width), rgba, true)
	}
}

// Cursor returns the cursor shape for the current interaction: a grab
// affordance while controls are shown or rotating, grabbing while dragging
// and a diagonal resize arrow while resizing.
func (b *Board) Cursor() ebiten.CursorShapeType {
	if i := b.activeSlot(); i >= 0 {
		switch b.slots[i].gesture.State() {
		case GestureDragging:
			return ebiten.CursorShapeMove
		case GestureResizing:
			return ebiten.CursorShapeNWSEResize
		case GestureRotating:
			return ebiten.CursorShapePointer
		}
	}
	if b.hover >= 0 && b.hover < len(b.slots) && b.slots[b.hover].controls {
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}
