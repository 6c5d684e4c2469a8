package scribble

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// scaleAboutTransform returns the matrix that scales by f about pivot and
// then translates by offset.
//
//	Translate(offset) * Translate(pivot) * Scale(f) * Translate(-pivot)
func scaleAboutTransform(pivot Vec2, f float64, offset Vec2) [6]float64 {
	return [6]float64{
		f, 0, 0, f,
		pivot.X - f*pivot.X + offset.X,
		pivot.Y - f*pivot.Y + offset.Y,
	}
}

// rotateAboutTransform returns the matrix that rotates by radians about c.
func rotateAboutTransform(c Vec2, radians float64) [6]float64 {
	if radians == 0 {
		return identityTransform
	}
	sin, cos := math.Sincos(radians)
	return [6]float64{
		cos, sin, -sin, cos,
		c.X - cos*c.X + sin*c.Y,
		c.Y - sin*c.X - cos*c.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
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
func transformPoint(m [6]float64, p Vec2) Vec2 {
	return Vec2{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
}

// transformPoints applies m to every point in pts in place and returns pts.
func transformPoints(m [6]float64, pts []Vec2) []Vec2 {
	for i := range pts {
		pts[i] = transformPoint(m, pts[i])
	}
	return pts
}

// ItemTransform returns the matrix mapping an item's world coordinates to
// screen coordinates: the viewport scale/pan step followed by the item's
// rotation about its on-screen center.
func ItemTransform(vp *Viewport, item CanvasItem) [6]float64 {
	s := vp.itemScaleTransform(item.LocalScale)
	center := transformPoint(s, item.Bounds.Center())
	return multiplyAffine(rotateAboutTransform(center, item.Rotation), s)
}
