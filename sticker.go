package sticker

import "image/color"

// Defaults shared by the board, the collection and the config layer.
const (
	DefaultCap   = 5   // maximum number of overlay slots
	DefaultWidth = 200 // initial rendered width of a newly placed overlay, in pixels
	MinWidth     = 50  // resize floor, in pixels
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for ebiten and vector calls.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// withAlpha returns c with its alpha multiplied by a.
func (c Color) withAlpha(a float64) Color {
	c.A *= a
	return c
}

// colorFrom converts any color.Color into a straight-alpha Color.
func colorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// EventType identifies a kind of pointer event on a Surface.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when the primary button is pressed
	EventPointerUp                     // fires when the primary button is released
	EventPointerMove                   // fires when the pointer position changes
	EventPointerEnter                  // fires when the pointer enters an overlay
	EventPointerLeave                  // fires when the pointer leaves an overlay
)

// String returns a short name for logging.
func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	case EventPointerEnter:
		return "pointerenter"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return "unknown"
	}
}

// Handle identifies which part of an overlay a pointer landed on.
type Handle uint8

const (
	HandleNone   Handle = iota // outside the overlay
	HandleBody                 // the image itself; starts a drag
	HandleResize               // bottom-right knob
	HandleRotate               // knob centred above the top edge
	HandleClose                // "X" button in the top-right corner
)

// String returns a short name for logging.
func (h Handle) String() string {
	switch h {
	case HandleBody:
		return "body"
	case HandleResize:
		return "resize"
	case HandleRotate:
		return "rotate"
	case HandleClose:
		return "close"
	default:
		return "none"
	}
}
