package mvt

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Curve is a 2D path made of line and Bezier segments, grouped into
// subpaths that each begin with a MoveTo.
//
// Building methods append to the curve and return it, so calls chain:
//
//	c := mvt.NewCurve().MoveTo(0, 0).LineTo(10, 0).QuadTo(10, 10, 0, 10).Close()
//
// Each segment stores one (MoveTo, LineTo, Close), two (QuadTo) or three
// (CubicTo) coordinate pairs. Len and At address those pairs in traversal
// order regardless of segment boundaries.
//
// The zero value is an empty curve ready to use. A Curve is not safe for
// concurrent mutation.
type Curve struct {
	segs []Segment

	// n is the number of stored coordinate pairs.
	n int

	// move is one more than the index in segs of the latest MoveTo,
	// or zero if the curve has none.
	move int
}

// NewCurve creates an empty curve.
func NewCurve() *Curve {
	return &Curve{segs: make([]Segment, 0, 16)}
}

// FromPoints builds a curve that moves to the first point and draws lines
// through the rest, closing the subpath when close is true. An empty slice
// yields an empty curve.
func FromPoints(points []Point, close bool) *Curve {
	return NewCurve().AddPoints(points, close)
}

// FromPointGroups builds one open subpath per group of points.
func FromPointGroups(groups [][]Point) *Curve {
	c := NewCurve()
	for _, g := range groups {
		c.AddPoints(g, false)
	}
	return c
}

// EllipseApprox returns a closed curve approximating the ellipse inscribed
// in the rectangle (x, y, w, h). It starts at the middle of the left edge
// and uses one cubic for each of the lower and upper halves, whose control
// points sit on the rectangle's corners.
func EllipseApprox(x, y, w, h float64) *Curve {
	return NewCurve().
		MoveTo(x, y+h/2).
		CurveTo(x, y+h, x+w, y+h, x+w, y+h/2).
		CurveTo(x+w, y, x, y, x, y+h/2).
		Close()
}

// Concat returns a new curve holding a's segments followed by b's.
// Neither argument is modified.
func Concat(a, b *Curve) *Curve {
	return a.Clone().Add(b)
}

func (c *Curve) push(s Segment) {
	c.segs = append(c.segs, s)
	c.n += s.Kind().NumPoints()
}

// current returns the last stored point, or the origin for an empty curve.
func (c *Curve) current() Point {
	if len(c.segs) == 0 {
		return Point{}
	}
	return c.segs[len(c.segs)-1].End()
}

// MoveTo starts a new subpath at (x, y).
func (c *Curve) MoveTo(x, y float64) *Curve {
	c.push(MoveTo{Point: Pt(x, y)})
	c.move = len(c.segs)
	return c
}

// MoveToRelative starts a new subpath offset by (dx, dy) from the last
// stored point, or from the origin when the curve is empty.
func (c *Curve) MoveToRelative(dx, dy float64) *Curve {
	p := c.current()
	return c.MoveTo(p.X+dx, p.Y+dy)
}

// LineTo appends a straight line to (x, y).
func (c *Curve) LineTo(x, y float64) *Curve {
	c.push(LineTo{Point: Pt(x, y)})
	return c
}

// LineToRelative appends a straight line to the last stored point offset
// by (dx, dy).
func (c *Curve) LineToRelative(dx, dy float64) *Curve {
	p := c.current()
	return c.LineTo(p.X+dx, p.Y+dy)
}

// QuadTo appends a quadratic Bezier curve with control point (cx, cy)
// ending at (x, y).
func (c *Curve) QuadTo(cx, cy, x, y float64) *Curve {
	c.push(QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	return c
}

// CurveTo appends a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (c *Curve) CurveTo(c1x, c1y, c2x, c2y, x, y float64) *Curve {
	c.push(CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	return c
}

// Close ends the current subpath with a line back to the point of the most
// recent MoveTo. It does nothing if the last segment is already a Close or
// if no subpath has been started.
func (c *Curve) Close() *Curve {
	if c.move == 0 {
		return c
	}
	if n := len(c.segs); n > 0 && c.segs[n-1].Kind() == CloseKind {
		return c
	}
	c.push(Close{Point: c.segs[c.move-1].End()})
	return c
}

// AppendSegment appends a segment described by its kind and points. Move
// and line segments take one point, quads two (control, end), cubics three
// (control, control, end) and Close none. A mismatched point count or an
// unknown kind returns an error wrapping ErrInvalidArgument and leaves the
// curve unchanged.
func (c *Curve) AppendSegment(kind SegmentKind, pts ...Point) error {
	if kind == CloseKind {
		if len(pts) != 0 {
			return fmt.Errorf("%v takes no points, got %d: %w", kind, len(pts), ErrInvalidArgument)
		}
		c.Close()
		return nil
	}
	s, err := drawingSegment(kind, pts)
	if err != nil {
		return err
	}
	c.push(s)
	if kind == MoveKind {
		c.move = len(c.segs)
	}
	return nil
}

// AddPoints appends a subpath that moves to points[0] and draws lines
// through the remaining points, closing it when close is true. An empty
// slice is ignored.
func (c *Curve) AddPoints(points []Point, close bool) *Curve {
	if len(points) == 0 {
		return c
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if close {
		c.Close()
	}
	return c
}

// Add appends all of other's segments to c and returns c. This is
// concatenation, not a boolean union: a later Close on c targets other's
// last MoveTo. Adding a curve to itself duplicates its segments.
func (c *Curve) Add(other *Curve) *Curve {
	if other.move > 0 {
		c.move = len(c.segs) + other.move
	}
	c.segs = append(c.segs, other.segs...)
	c.n += other.n
	return c
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	return &Curve{
		segs: slices.Clone(c.segs),
		n:    c.n,
		move: c.move,
	}
}

// Transform applies m to every stored point in place and returns c.
func (c *Curve) Transform(m Matrix) *Curve {
	for i, s := range c.segs {
		c.segs[i] = s.transform(m)
	}
	return c
}

// Translate moves every point by (dx, dy).
func (c *Curve) Translate(dx, dy float64) *Curve {
	return c.Transform(Translate(dx, dy))
}

// Rotate rotates every point by theta radians about the origin.
func (c *Curve) Rotate(theta float64) *Curve {
	return c.Transform(Rotate(theta))
}

// Scale scales every point about the origin.
func (c *Curve) Scale(sx, sy float64) *Curve {
	return c.Transform(Scale(sx, sy))
}

// Len returns the number of stored coordinate pairs.
func (c *Curve) Len() int {
	return c.n
}

// Empty reports whether the curve has no segments.
func (c *Curve) Empty() bool {
	return len(c.segs) == 0
}

// At returns the i-th stored coordinate pair. It panics if i is out of
// range.
func (c *Curve) At(i int) Point {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("mvt: point index %d out of range [0:%d]", i, c.n))
	}
	for _, s := range c.segs {
		k := s.Kind().NumPoints()
		if i < k {
			return s.point(i)
		}
		i -= k
	}
	panic("unreachable")
}

// Points iterates over the stored coordinate pairs in traversal order.
func (c *Curve) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, s := range c.segs {
			for i := range s.Kind().NumPoints() {
				if !yield(s.point(i)) {
					return
				}
			}
		}
	}
}

// Segments returns a copy of the curve's segments.
func (c *Curve) Segments() []Segment {
	return slices.Clone(c.segs)
}

// Bounds returns the smallest axis-aligned rectangle containing every
// stored point. Control points count, so the result can be larger than the
// drawn shape. An empty curve has the zero Rect as bounds.
func (c *Curve) Bounds() Rect {
	if c.n == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for p := range c.Points() {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
