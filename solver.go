package mvt

import "math"

// Real-root solvers for the polynomials that describe Bezier coordinates.
// Coefficients are passed highest degree first. The algorithms follow kurbo
// (https://github.com/linebender/kurbo): coefficients are normalised by the
// leading term and the equation drops to a lower degree when that
// normalisation is not finite.

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending
// order. A double root is reported once. When a is zero (or so small that
// dividing by it overflows) the linear equation b*x + c = 0 is solved
// instead; if every coefficient is zero the single root 0 is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	p := b / a
	q := c / a
	if !isFinite(p) || !isFinite(q) {
		return solveLinear(b, c)
	}

	disc := p*p - 4*q
	if !isFinite(disc) {
		// p*p overflowed; x ~ -p is one root and Vieta gives the other.
		return orderedPair(-p, q/-p)
	}
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * p}
	}

	// Pick the sign that avoids cancellation, then use Vieta for the other.
	r1 := -0.5 * (p + math.Copysign(math.Sqrt(disc), p))
	return orderedPair(r1, q/r1)
}

func solveLinear(b, c float64) []float64 {
	if root := -c / b; isFinite(root) {
		return []float64{root}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

func orderedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// SolveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0 in no
// particular order. It uses Blinn's method as presented in
// https://momentsingraphics.de/CubicRoots.html and falls back to
// SolveQuadratic when a is zero or negligible.
func SolveCubic(a, b, c, d float64) []float64 {
	const third = 1.0 / 3.0

	inv := 1 / a
	c2 := b * (third * inv)
	c1 := c * (third * inv)
	c0 := d * inv
	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		return SolveQuadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	depressed := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * depressed
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	case disc == 0:
		t := math.Copysign(math.Sqrt(-d0), depressed)
		return []float64{t - c2, -2*t - c2}
	}

	theta := math.Atan2(math.Sqrt(disc), -depressed) * third
	sin, cos := math.Sincos(theta)
	ss3 := sin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	return []float64{
		t*cos - c2,
		t*0.5*(-cos+ss3) - c2,
		t*0.5*(-cos-ss3) - c2,
	}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
