package sticker

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// overlayTransform computes the affine matrix that maps overlay-local
// coordinates (origin at the unrotated top-left, units in pixels) to page
// coordinates. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Rotate(deg) -> Translate(x+w/2, y+h/2)
func overlayTransform(o Overlay) [6]float64 {
	sin, cos := math.Sincos(o.Rotation * math.Pi / 180)

	px := o.Width / 2
	py := o.Height / 2

	rtx := -cos*px + sin*py
	rty := -sin*px - cos*py

	return [6]float64{cos, sin, -sin, cos, rtx + o.X + px, rty + o.Y + py}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// WorldToLocal converts a page point into the overlay's unrotated local space.
func WorldToLocal(o Overlay, wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(overlayTransform(o)), wx, wy)
}

// LocalToWorld converts an overlay-local point to page coordinates.
func LocalToWorld(o Overlay, lx, ly float64) (wx, wy float64) {
	return transformPoint(overlayTransform(o), lx, ly)
}

// BoundingBox returns the axis-aligned bounds of the rotated overlay, the
// equivalent of a layout engine's client rect.
func BoundingBox(o Overlay) Rect {
	m := overlayTransform(o)
	corners := [4]Vec2{{0, 0}, {o.Width, 0}, {o.Width, o.Height}, {0, o.Height}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := transformPoint(m, c.X, c.Y)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
