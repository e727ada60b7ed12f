package mvt

import "math"

// Rect is an axis-aligned rectangle given by its origin corner and extents.
// Rectangles produced by this package always have W >= 0 and H >= 0.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from an origin and extents.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners returns the rectangle spanned by two opposite corners.
// The corners may be given in any order.
func RectFromCorners(p1, p2 Point) Rect {
	return Rect{
		X: math.Min(p1.X, p2.X),
		Y: math.Min(p1.Y, p2.Y),
		W: math.Abs(p2.X - p1.X),
		H: math.Abs(p2.Y - p1.Y),
	}
}

// Min returns the origin corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the corner opposite the origin.
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
