package sticker

import "fmt"

// ID identifies an overlay slot. It is assigned once when the slot is first
// allocated and survives slot reuse.
type ID uint32

// String formats the ID for logs and notices.
func (id ID) String() string {
	return fmt.Sprintf("overlay-%d", uint32(id))
}

// Overlay is the geometry record of one overlay slot. It is a plain value:
// updates go through ApplyPatch, which returns a new Overlay.
type Overlay struct {
	ID  ID
	Src string // image payload reference; empty when the slot was never filled

	// Top-left of the unrotated box in page coordinates.
	X, Y float64
	// Rendered size. Height always follows Width through the aspect ratio.
	Width, Height float64
	// Rotation in degrees about the box centre. Not normalized.
	Rotation float64

	// Natural pixel size of the source image, fixed at load time.
	OriginalWidth, OriginalHeight float64

	// IsVisible false marks the slot closed and reusable.
	IsVisible bool
}

// AspectRatio returns OriginalWidth / OriginalHeight, or 0 if the natural
// size is unknown.
func (o Overlay) AspectRatio() float64 {
	if o.OriginalWidth <= 0 || o.OriginalHeight <= 0 {
		return 0
	}
	return o.OriginalWidth / o.OriginalHeight
}

// Bounds returns the unrotated layout box.
func (o Overlay) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Center returns the rotation centre, which is also the centre of the
// rotated box's bounding rectangle.
func (o Overlay) Center() Vec2 {
	return o.Bounds().Center()
}

// Renderable reports whether the overlay should be drawn and hit-tested.
func (o Overlay) Renderable() bool {
	return o.IsVisible && o.Src != ""
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Src            *string
	X, Y           *float64
	Width, Height  *float64
	Rotation       *float64
	OriginalWidth  *float64
	OriginalHeight *float64
	IsVisible      *bool
}

// Empty reports whether the patch sets no fields.
func (p Patch) Empty() bool {
	return p.Src == nil && p.X == nil && p.Y == nil &&
		p.Width == nil && p.Height == nil && p.Rotation == nil &&
		p.OriginalWidth == nil && p.OriginalHeight == nil && p.IsVisible == nil
}

// ApplyPatch returns a copy of o with only the fields set in p replaced.
// The ID is never patched.
func ApplyPatch(o Overlay, p Patch) Overlay {
	if p.Src != nil {
		o.Src = *p.Src
	}
	if p.X != nil {
		o.X = *p.X
	}
	if p.Y != nil {
		o.Y = *p.Y
	}
	if p.Width != nil {
		o.Width = *p.Width
	}
	if p.Height != nil {
		o.Height = *p.Height
	}
	if p.Rotation != nil {
		o.Rotation = *p.Rotation
	}
	if p.OriginalWidth != nil {
		o.OriginalWidth = *p.OriginalWidth
	}
	if p.OriginalHeight != nil {
		o.OriginalHeight = *p.OriginalHeight
	}
	if p.IsVisible != nil {
		o.IsVisible = *p.IsVisible
	}
	return o
}

// --- Patch constructors ---

// MovePatch sets X and Y.
func MovePatch(x, y float64) Patch {
	return Patch{X: &x, Y: &y}
}

// SizePatch sets Width and Height.
func SizePatch(w, h float64) Patch {
	return Patch{Width: &w, Height: &h}
}

// RotationPatch sets Rotation.
func RotationPatch(deg float64) Patch {
	return Patch{Rotation: &deg}
}

// VisibilityPatch sets IsVisible.
func VisibilityPatch(visible bool) Patch {
	return Patch{IsVisible: &visible}
}
