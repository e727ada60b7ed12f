package mvt

import (
	"fmt"
	"math"
)

// rayLimit stands in for an infinite ray: large, but with room for a few
// float operations before overflowing.
const rayLimit = math.MaxFloat64 / 1000

// WindingNumber returns the signed number of times the curve winds around
// (x, y). Every subpath is treated as closed, whether or not it ends with
// Close.
func (c *Curve) WindingNumber(x, y float64) int {
	return c.crossings(Pt(x, y), true, true, rayLimit)
}

// Contains reports whether (x, y) is inside the curve under the nonzero
// winding rule.
func (c *Curve) Contains(x, y float64) bool {
	return c.WindingNumber(x, y) != 0
}

// ContainsPoint is Contains for a Point.
func (c *Curve) ContainsPoint(p Point) bool {
	return c.Contains(p.X, p.Y)
}

// Intersects reports whether r overlaps the curve. It casts four rays along
// the rectangle's sides (top and bottom along +X from the left edge, left
// and right along +Y from the top edge) and falls back to testing whether
// the origin corner is inside. This is a heuristic used for hit testing:
// a path that crosses the rectangle without touching any of those rays and
// without enclosing the corner is not detected.
func (c *Curve) Intersects(r Rect) bool {
	if c.crossings(Pt(r.X, r.Y), false, false, r.W) != 0 ||
		c.crossings(Pt(r.X, r.Y+r.H), false, false, r.W) != 0 ||
		c.crossings(Pt(r.X+r.W, r.Y), false, true, r.H) != 0 ||
		c.crossings(Pt(r.X, r.Y), false, true, r.H) != 0 {
		return true
	}
	return c.WindingNumber(r.X, r.Y) != 0
}

// crossings counts how often the curve crosses the ray that starts at from
// and runs length units along +X (or +Y when alongY is set). With signed
// set, crossings in opposite directions cancel and the result is a winding
// number; otherwise every crossing counts +1.
func (c *Curve) crossings(from Point, signed, alongY bool, length float64) int {
	if len(c.segs) == 0 {
		return 0
	}

	r := ray{length: length, alongY: alongY, opposite: 1}
	if signed {
		r.opposite = -1
	}
	if alongY {
		from = from.swap()
	}
	r.origin = from

	// An epsilon small relative to the path, used to nudge vertices lying
	// exactly on the ray off it.
	first := c.segs[0].point(0)
	if alongY {
		first = first.swap()
	}
	r.eps = math.Max(first.Y*1e-7, 1e-7)

	// A curve that draws before its first MoveTo starts at the origin.
	cur := r.local(Point{})
	start := cur
	open := false

	for _, s := range c.segs {
		switch s := s.(type) {
		case MoveTo:
			if open {
				r.line(cur, start)
			}
			cur = r.local(s.Point)
			start = cur
			open = true
		case LineTo:
			p := r.local(s.Point)
			r.line(cur, p)
			cur = p
			open = true
		case QuadTo:
			p1, p2 := r.local(s.Control), r.local(s.Point)
			r.quad(cur, p1, p2)
			cur = p2
			open = true
		case CubicTo:
			p1, p2, p3 := r.local(s.Control1), r.local(s.Control2), r.local(s.Point)
			r.cubic(cur, p1, p2, p3)
			cur = p3
			open = true
		case Close:
			r.line(cur, start)
			cur = start
			open = false
		default:
			panic(fmt.Sprintf("mvt: unknown segment type %T", s))
		}
	}
	if open {
		r.line(cur, start)
	}
	return r.total
}

// ray accumulates crossings with the segment from (eps, 0) to (length, 0)
// in a frame centred on the ray's origin. Casting along Y swaps the axes of
// every point, so the walker only ever deals with a horizontal ray.
type ray struct {
	origin   Point
	alongY   bool
	length   float64
	eps      float64
	opposite int
	total    int
}

func (r *ray) local(p Point) Point {
	if r.alongY {
		p = p.swap()
	}
	return p.Sub(r.origin)
}

func (r *ray) count(decreasing bool) {
	if decreasing {
		r.total++
	} else {
		r.total += r.opposite
	}
}

func (r *ray) nudge(y float64) float64 {
	if y == 0 {
		return y - r.eps
	}
	return y
}

func (r *ray) line(p0, p1 Point) {
	p0.Y = r.nudge(p0.Y)
	p1.Y = r.nudge(p1.Y)
	if segmentsIntersect(p0, p1, Pt(r.eps, 0), Pt(r.length, 0)) {
		r.count(p1.Y < p0.Y)
	}
}

func (r *ray) quad(p0, p1, p2 Point) {
	if !(p0.X > 0 || p1.X > 0 || p2.X > 0) {
		return
	}
	if !(p0.Y*p1.Y <= 0 || p1.Y*p2.Y <= 0) {
		return
	}
	p0.Y = r.nudge(p0.Y)
	p2.Y = r.nudge(p2.Y)

	x := quadPolyOf(p0.X, p1.X, p2.X)
	y := quadPolyOf(p0.Y, p1.Y, p2.Y)
	for _, t := range y.roots() {
		if t <= 0 || t >= 1 {
			continue
		}
		// A root with zero slope has no crossing direction.
		d := y.deriv(t)
		if d == 0 {
			continue
		}
		if cx := x.eval(t); cx >= 0 && cx <= r.length {
			r.count(d < 0)
		}
	}
}

func (r *ray) cubic(p0, p1, p2, p3 Point) {
	if !(p0.X > 0 || p1.X > 0 || p2.X > 0 || p3.X > 0) {
		return
	}
	if !(p0.Y*p1.Y <= 0 || p1.Y*p2.Y <= 0 || p2.Y*p3.Y <= 0) {
		return
	}
	p0.Y = r.nudge(p0.Y)
	p3.Y = r.nudge(p3.Y)

	x := cubicPolyOf(p0.X, p1.X, p2.X, p3.X)
	y := cubicPolyOf(p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range y.roots() {
		if t <= 0 || t >= 1 {
			continue
		}
		// A root with zero slope has no crossing direction.
		d := y.deriv(t)
		if d == 0 {
			continue
		}
		if cx := x.eval(t); cx >= 0 && cx <= r.length {
			r.count(d < 0)
		}
	}
}

// relativeCCW reports on which side of the directed segment a->b the point
// p lies: -1, 0 or +1. Collinear points report 0 when they lie on the
// segment and +/-1 when they lie beyond one of its ends.
func relativeCCW(a, b, p Point) int {
	b = b.Sub(a)
	p = p.Sub(a)
	ccw := p.X*b.Y - p.Y*b.X
	if ccw == 0 {
		ccw = p.X*b.X + p.Y*b.Y
		if ccw > 0 {
			p = p.Sub(b)
			ccw = p.X*b.X + p.Y*b.Y
			if ccw < 0 {
				ccw = 0
			}
		}
	}
	switch {
	case ccw < 0:
		return -1
	case ccw > 0:
		return 1
	default:
		return 0
	}
}

// segmentsIntersect reports whether segment p1-p2 touches segment p3-p4.
// Endpoints count.
func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	return relativeCCW(p1, p2, p3)*relativeCCW(p1, p2, p4) <= 0 &&
		relativeCCW(p3, p4, p1)*relativeCCW(p3, p4, p2) <= 0
}
