package mvt

import (
	"math"
	"slices"
)

// Power-basis forms of Bezier coordinates. The winding walker needs a
// coordinate as a polynomial in t to hand it to the root solvers, and the
// derivative sign to know which way the curve crosses the ray.

// quadPoly holds a*t^2 + b*t + c.
type quadPoly struct {
	a, b, c float64
}

func quadPolyOf(p0, p1, p2 float64) quadPoly {
	return quadPoly{
		a: p2 - 2*p1 + p0,
		b: 2 * (p1 - p0),
		c: p0,
	}
}

func (q quadPoly) eval(t float64) float64 {
	return (q.a*t+q.b)*t + q.c
}

func (q quadPoly) deriv(t float64) float64 {
	return 2*q.a*t + q.b
}

// roots returns the parameters where the polynomial vanishes. A genuine
// quadratic with a double root touches zero without crossing it, so it
// yields no roots.
func (q quadPoly) roots() []float64 {
	roots := SolveQuadratic(q.a, q.b, q.c)
	if len(roots) < 2 && isFinite(q.b/q.a) && isFinite(q.c/q.a) {
		return nil
	}
	return roots
}

// cubicPoly holds a*t^3 + b*t^2 + c*t + d.
type cubicPoly struct {
	a, b, c, d float64
}

func cubicPolyOf(p0, p1, p2, p3 float64) cubicPoly {
	return cubicPoly{
		a: p3 - 3*p2 + 3*p1 - p0,
		b: 3 * (p2 + p0 - 2*p1),
		c: 3 * (p1 - p0),
		d: p0,
	}
}

func (p cubicPoly) eval(t float64) float64 {
	return ((p.a*t+p.b)*t+p.c)*t + p.d
}

func (p cubicPoly) deriv(t float64) float64 {
	return (3*p.a*t+2*p.b)*t + p.c
}

func (p cubicPoly) deriv2(t float64) float64 {
	return 6*p.a*t + 2*p.b
}

// roots returns the parameters where the polynomial crosses zero. Repeated
// roots are reported once, and a double root, where the curve touches zero
// and turns back, is dropped. A triple root still crosses and is kept.
func (p cubicPoly) roots() []float64 {
	all := SolveCubic(p.a, p.b, p.c, p.d)
	tol := 1e-12 * (math.Abs(p.a) + math.Abs(p.b) + math.Abs(p.c))
	roots := make([]float64, 0, len(all))
	for _, t := range all {
		if slices.Contains(roots, t) {
			continue
		}
		if math.Abs(p.deriv(t)) <= tol && math.Abs(p.deriv2(t)) > tol {
			continue
		}
		roots = append(roots, t)
	}
	return roots
}
