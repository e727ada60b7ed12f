package mvt

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// MulXY scales each component independently.
func (p Point) MulXY(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// swap exchanges the axes. The winding walker uses it to cast rays along Y
// with the same code that casts them along X.
func (p Point) swap() Point {
	return Point{X: p.Y, Y: p.X}
}
