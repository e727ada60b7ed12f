package mvt

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |     | m00 m01 m02 |
//	| d  e  f |  =  | m10 m11 m12 |
//
// The implicit third row is [0 0 1], giving
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other), so other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns m00*m11 - m01*m10.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// WithoutTranslation returns the delta variant of m: the same linear part
// with the translation column zeroed.
func (m Matrix) WithoutTranslation() Matrix {
	m.C, m.F = 0, 0
	return m
}

// Invert returns the inverse matrix. It fails with ErrDegenerateTransform
// when the determinant is zero or the inverse does not fit in a float64.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, fmt.Errorf("invert %v: %w", m, ErrDegenerateTransform)
	}

	inv := Matrix{
		A: m.E / det,
		B: -m.B / det,
		C: (m.B*m.F - m.C*m.E) / det,
		D: -m.D / det,
		E: m.A / det,
		F: (m.D*m.C - m.A*m.F) / det,
	}
	if !inv.finite() {
		return Matrix{}, fmt.Errorf("invert %v: determinant %g underflows: %w", m, det, ErrDegenerateTransform)
	}
	return inv, nil
}

func (m Matrix) finite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}
