package mvt

import (
	"fmt"
	"log/slog"
)

// Transform maps between two 2D coordinate spaces: "model" (simulation
// units such as meters) and "view" (pixels). It holds the forward matrix,
// view = M * model, together with the inverse and the translation-free
// delta variants of both, which are kept in sync whenever the scale
// changes.
//
// Every method returns fresh values; a Transform holds no scratch state, so
// it may be read from several goroutines. The scale setters must not run
// concurrently with anything else.
type Transform struct {
	forward      Matrix
	inverse      Matrix
	delta        Matrix
	deltaInverse Matrix
}

// NewTransform creates a transform from an arbitrary affine matrix. It
// returns an error wrapping ErrDegenerateTransform if m is not invertible.
func NewTransform(m Matrix) (*Transform, error) {
	t := &Transform{}
	if err := t.setMatrix(m); err != nil {
		return nil, err
	}
	return t, nil
}

// FromScale creates a transform with view = model * scale.
func FromScale(xScale, yScale float64) (*Transform, error) {
	return NewTransform(Scale(xScale, yScale))
}

// FromUniformScale is FromScale with the same scale on both axes.
func FromUniformScale(scale float64) (*Transform, error) {
	return FromScale(scale, scale)
}

// FromOffsetScale creates a transform with view = model * scale + offset,
// offset being in view coordinates.
func FromOffsetScale(offset Point, xScale, yScale float64) (*Transform, error) {
	return NewTransform(Matrix{
		A: xScale, C: offset.X,
		E: yScale, F: offset.Y,
	})
}

// FromPointMapping creates a shearless transform with the given scales that
// maps model exactly onto view.
func FromPointMapping(model, view Point, xScale, yScale float64) (*Transform, error) {
	offset := view.Sub(model.MulXY(xScale, yScale))
	return FromOffsetScale(offset, xScale, yScale)
}

// FromPointMappingInvertedY is FromPointMapping with the y axis flipped, so
// that +y in the model (up, as in textbooks) becomes -y in the view (down,
// as in pixel coordinates).
func FromPointMappingInvertedY(model, view Point, scale float64) (*Transform, error) {
	return FromPointMapping(model, view, scale, -scale)
}

// FromRectMapping creates the shearless transform that takes every point
// x% across and y% down model to the point x% across and y% down view,
// extrapolating linearly outside the rectangles. Both rectangles must have
// positive width and height.
func FromRectMapping(model, view Rect) (*Transform, error) {
	if model.Empty() || view.Empty() {
		return nil, fmt.Errorf("rect mapping %v -> %v needs positive extents: %w", model, view, ErrInvalidArgument)
	}
	sx := view.W / model.W
	sy := view.H / model.H
	return NewTransform(Matrix{
		A: sx, C: view.X - sx*model.X,
		E: sy, F: view.Y - sy*model.Y,
	})
}

// setMatrix derives all matrices from m and commits them only if m can be
// inverted, so a failed update leaves t untouched.
func (t *Transform) setMatrix(m Matrix) error {
	inv, err := m.Invert()
	if err != nil {
		Logger().Debug("mvt: rejected transform", slog.String("matrix", m.String()), slog.Float64("det", m.Determinant()))
		return err
	}
	t.forward = m
	t.inverse = inv
	t.delta = m.WithoutTranslation()
	t.deltaInverse = inv.WithoutTranslation()
	return nil
}

// Matrix returns the model-to-view matrix.
func (t *Transform) Matrix() Matrix {
	return t.forward
}

// InverseMatrix returns the view-to-model matrix.
func (t *Transform) InverseMatrix() Matrix {
	return t.inverse
}

// ToView maps a model point to view coordinates.
func (t *Transform) ToView(p Point) Point {
	return t.forward.TransformPoint(p)
}

// ToViewRect maps a model rectangle to view coordinates. The result is the
// box spanned by both mapped corners, with its origin at the minimum corner.
// Under a flipped axis that origin is not the image of r's (X, Y): with
// FromPointMappingInvertedY(Pt(0, 0), Pt(400, 300), 50) the model rectangle
// {0, 0, 1, 1} maps to {400, 250, 50, 50}.
func (t *Transform) ToViewRect(r Rect) Rect {
	return transformRect(t.forward, r)
}

// ToViewCurve returns a view-space copy of c. c itself is unchanged.
func (t *Transform) ToViewCurve(c *Curve) *Curve {
	return c.Clone().Transform(t.forward)
}

// ToViewDelta maps a model vector or extent to view units, ignoring the
// translation.
func (t *Transform) ToViewDelta(p Point) Point {
	return t.delta.TransformPoint(p)
}

// ToViewDeltaRect maps a model rectangle to view units ignoring the
// translation; mostly useful for sizes.
func (t *Transform) ToViewDeltaRect(r Rect) Rect {
	return transformRect(t.delta, r)
}

// ToViewX maps a model x coordinate to view x, taking model y as 0.
func (t *Transform) ToViewX(x float64) float64 {
	return t.forward.TransformPoint(Pt(x, 0)).X
}

// ToViewY maps a model y coordinate to view y, taking model x as 0.
func (t *Transform) ToViewY(y float64) float64 {
	return t.forward.TransformPoint(Pt(0, y)).Y
}

// ToViewDeltaX maps a model x extent to view units.
func (t *Transform) ToViewDeltaX(x float64) float64 {
	return t.delta.TransformPoint(Pt(x, 0)).X
}

// ToViewDeltaY maps a model y extent to view units.
func (t *Transform) ToViewDeltaY(y float64) float64 {
	return t.delta.TransformPoint(Pt(0, y)).Y
}

// ToModel maps a view point to model coordinates.
func (t *Transform) ToModel(p Point) Point {
	return t.inverse.TransformPoint(p)
}

// ToModelRect maps a view rectangle to model coordinates. Like ToViewRect,
// the origin of the result is its minimum corner.
func (t *Transform) ToModelRect(r Rect) Rect {
	return transformRect(t.inverse, r)
}

// ToModelCurve returns a model-space copy of c. c itself is unchanged.
func (t *Transform) ToModelCurve(c *Curve) *Curve {
	return c.Clone().Transform(t.inverse)
}

// ToModelDelta maps a view vector or extent to model units.
func (t *Transform) ToModelDelta(p Point) Point {
	return t.deltaInverse.TransformPoint(p)
}

// ToModelDeltaRect maps a view rectangle to model units ignoring the
// translation.
func (t *Transform) ToModelDeltaRect(r Rect) Rect {
	return transformRect(t.deltaInverse, r)
}

// ToModelX maps a view x coordinate to model x, taking view y as 0.
func (t *Transform) ToModelX(x float64) float64 {
	return t.inverse.TransformPoint(Pt(x, 0)).X
}

// ToModelY maps a view y coordinate to model y, taking view x as 0.
func (t *Transform) ToModelY(y float64) float64 {
	return t.inverse.TransformPoint(Pt(0, y)).Y
}

// ToModelDeltaX maps a view x extent to model units.
func (t *Transform) ToModelDeltaX(x float64) float64 {
	return t.deltaInverse.TransformPoint(Pt(x, 0)).X
}

// ToModelDeltaY maps a view y extent to model units.
func (t *Transform) ToModelDeltaY(y float64) float64 {
	return t.deltaInverse.TransformPoint(Pt(0, y)).Y
}

// Scale returns the diagonal entries of the forward matrix as (x, y).
func (t *Transform) Scale() Point {
	return Pt(t.forward.A, t.forward.E)
}

// ScaleX returns the x scale of the forward matrix.
func (t *Transform) ScaleX() float64 {
	return t.forward.A
}

// ScaleY returns the y scale of the forward matrix.
func (t *Transform) ScaleY() float64 {
	return t.forward.E
}

// SetScale replaces the diagonal entries of the forward matrix and
// recomputes the derived matrices. On error the transform is unchanged.
func (t *Transform) SetScale(x, y float64) error {
	m := t.forward
	m.A, m.E = x, y
	if err := t.setMatrix(m); err != nil {
		return fmt.Errorf("set scale (%g, %g): %w", x, y, err)
	}
	return nil
}

// SetScaleX changes the x scale, keeping the y scale.
func (t *Transform) SetScaleX(x float64) error {
	return t.SetScale(x, t.forward.E)
}

// SetScaleY changes the y scale, keeping the x scale.
func (t *Transform) SetScaleY(y float64) error {
	return t.SetScale(t.forward.A, y)
}

// transformRect maps the rectangle's origin and opposite corners through m
// and returns the axis-aligned rectangle they span. A flipped axis
// therefore still yields non-negative extents.
func transformRect(m Matrix, r Rect) Rect {
	return RectFromCorners(m.TransformPoint(r.Min()), m.TransformPoint(r.Max()))
}
