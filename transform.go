package vjoy

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Geometry describes where a joystick's interactive area sits on screen.
// Bounds is expressed in the coordinate space of Transform's input; with the
// zero Transform (treated as identity) it is plain screen space.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Geometry struct {
	Bounds    Rect
	Transform [6]float64
}

// matrix returns the effective transform, mapping the zero value to identity.
func (g Geometry) matrix() [6]float64 {
	if g.Transform == ([6]float64{}) {
		return identityTransform
	}
	return g.Transform
}

// LogicalRect returns the screen-space rectangle of the interactive area: the
// bounds center mapped through the transform, with the size scaled by the
// transform's axis scale. Rotation does not widen the rectangle.
func (g Geometry) LogicalRect() Rect {
	m := g.matrix()
	if m == identityTransform {
		return g.Bounds
	}
	c := g.Bounds.Center()
	cx, cy := transformPoint(m, c.X, c.Y)
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[2], m[3])
	w := g.Bounds.Width * sx
	h := g.Bounds.Height * sy
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Contains reports whether the screen-space point p lies inside the
// interactive area, honoring rotation and skew in the transform.
func (g Geometry) Contains(p Vec2) bool {
	m := g.matrix()
	if m == identityTransform {
		return g.Bounds.Contains(p.X, p.Y)
	}
	lx, ly := transformPoint(invertAffine(m), p.X, p.Y)
	return g.Bounds.Contains(lx, ly)
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
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

// ScaleRotate builds a transform that scales by (sx, sy), rotates by angle
// radians, then translates by (tx, ty). Handy for widgets nested in scaled UI.
func ScaleRotate(sx, sy, angle, tx, ty float64) [6]float64 {
	sin, cos := math.Sincos(angle)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, tx, ty}
}
