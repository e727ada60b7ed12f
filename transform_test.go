package mvt

import (
	"errors"
	"math"
	"testing"
)

func mustTransform(t *testing.T) func(*Transform, error) *Transform {
	return func(tr *Transform, err error) *Transform {
		t.Helper()
		if err != nil {
			t.Fatalf("transform construction failed: %v", err)
		}
		return tr
	}
}

func rectsClose(a, b Rect, eps float64) bool {
	return almostEqual(a.X, b.X, eps) && almostEqual(a.Y, b.Y, eps) &&
		almostEqual(a.W, b.W, eps) && almostEqual(a.H, b.H, eps)
}

func TestTransformRoundTrip(t *testing.T) {
	must := mustTransform(t)
	transforms := map[string]*Transform{
		"scale":         must(FromScale(3, 0.25)),
		"uniform":       must(FromUniformScale(1e-6)),
		"offset scale":  must(FromOffsetScale(Pt(-40, 17), 12, -8)),
		"point mapping": must(FromPointMapping(Pt(1e-15, 2e-15), Pt(300, 200), 1e15, 1e15)),
		"inverted y":    must(FromPointMappingInvertedY(Pt(0, 0), Pt(400, 300), 50)),
		"rect mapping":  must(FromRectMapping(NewRect(-1, -1, 2, 2), NewRect(0, 0, 800, 600))),
		"rotated":       must(NewTransform(Rotate(0.3).Multiply(Scale(2, 5)))),
	}
	samples := []Point{{0, 0}, {1, 1}, {-7.5, 3}, {123.456, -0.001}}
	for name, tr := range transforms {
		t.Run(name, func(t *testing.T) {
			for _, p := range samples {
				back := tr.ToModel(tr.ToView(p))
				scale := math.Max(1, math.Hypot(p.X, p.Y))
				if !pointsClose(back, p, 1e-9*scale) {
					t.Errorf("ToModel(ToView(%v)) = %v", p, back)
				}
			}
		})
	}
}

func TestFromPointMappingExact(t *testing.T) {
	model, view := Pt(2.5, -1.25), Pt(640, 480)
	tr := mustTransform(t)(FromPointMapping(model, view, 37, 11))
	if got := tr.ToView(model); !pointsClose(got, view, 1e-9) {
		t.Errorf("ToView(%v) = %v, want %v", model, got, view)
	}
	if got := tr.Scale(); got != Pt(37, 11) {
		t.Errorf("Scale() = %v, want (37, 11)", got)
	}
}

func TestInvertedYScenario(t *testing.T) {
	tr := mustTransform(t)(FromPointMappingInvertedY(Pt(0, 0), Pt(400, 300), 50))
	if got := tr.ToView(Pt(1, 1)); !pointsClose(got, Pt(450, 250), 1e-12) {
		t.Errorf("ToView(1,1) = %v, want (450, 250)", got)
	}
	if got := tr.ToModel(Pt(450, 250)); !pointsClose(got, Pt(1, 1), 1e-12) {
		t.Errorf("ToModel(450,250) = %v, want (1, 1)", got)
	}
	if got := tr.ScaleY(); got != -50 {
		t.Errorf("ScaleY() = %v, want -50", got)
	}
}

func TestDeltaIgnoresTranslation(t *testing.T) {
	tr := mustTransform(t)(FromOffsetScale(Pt(100, -60), 4, -2))
	if got := tr.ToViewDelta(Pt(0, 0)); got != (Point{}) {
		t.Errorf("ToViewDelta(0,0) = %v, want origin", got)
	}
	if got := tr.ToModelDelta(Pt(0, 0)); got != (Point{}) {
		t.Errorf("ToModelDelta(0,0) = %v, want origin", got)
	}
	p, q := Pt(3, 9), Pt(-2, 0.5)
	gotDelta := tr.ToViewDelta(p).Sub(tr.ToViewDelta(q))
	gotFull := tr.ToView(p).Sub(tr.ToView(q))
	if !pointsClose(gotDelta, gotFull, 1e-12) {
		t.Errorf("delta difference %v != full difference %v", gotDelta, gotFull)
	}
	if got := tr.ToModelDelta(tr.ToViewDelta(p)); !pointsClose(got, p, 1e-12) {
		t.Errorf("delta round trip = %v, want %v", got, p)
	}
}

func TestAxisHelpersMatchPointTransform(t *testing.T) {
	tr := mustTransform(t)(FromPointMapping(Pt(1, 2), Pt(30, 40), 5, -3))
	for _, v := range []float64{-4, 0, 0.5, 17} {
		if got, want := tr.ToViewX(v), tr.ToView(Pt(v, 0)).X; got != want {
			t.Errorf("ToViewX(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToViewY(v), tr.ToView(Pt(0, v)).Y; got != want {
			t.Errorf("ToViewY(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToViewDeltaX(v), tr.ToViewDelta(Pt(v, 0)).X; got != want {
			t.Errorf("ToViewDeltaX(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToViewDeltaY(v), tr.ToViewDelta(Pt(0, v)).Y; got != want {
			t.Errorf("ToViewDeltaY(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToModelX(v), tr.ToModel(Pt(v, 0)).X; got != want {
			t.Errorf("ToModelX(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToModelY(v), tr.ToModel(Pt(0, v)).Y; got != want {
			t.Errorf("ToModelY(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToModelDeltaX(v), tr.ToModelDelta(Pt(v, 0)).X; got != want {
			t.Errorf("ToModelDeltaX(%v) = %v, want %v", v, got, want)
		}
		if got, want := tr.ToModelDeltaY(v), tr.ToModelDelta(Pt(0, v)).Y; got != want {
			t.Errorf("ToModelDeltaY(%v) = %v, want %v", v, got, want)
		}
	}
	if got := tr.ToViewDeltaX(2); got != 10 {
		t.Errorf("ToViewDeltaX(2) = %v, want 10", got)
	}
	if got := tr.ToModelDeltaY(6); got != -2 {
		t.Errorf("ToModelDeltaY(6) = %v, want -2", got)
	}
}

func TestFromRectMapping(t *testing.T) {
	model := NewRect(-2, 1, 4, 0.5)
	view := NewRect(10, 20, 800, 100)
	tr := mustTransform(t)(FromRectMapping(model, view))

	corners := []struct{ m, v Point }{
		{model.Min(), view.Min()},
		{model.Max(), view.Max()},
		{Pt(model.X+model.W, model.Y), Pt(view.X+view.W, view.Y)},
		{Pt(model.X, model.Y+model.H), Pt(view.X, view.Y+view.H)},
		{model.Center(), view.Center()},
	}
	for _, c := range corners {
		if got := tr.ToView(c.m); !pointsClose(got, c.v, 1e-9) {
			t.Errorf("ToView(%v) = %v, want %v", c.m, got, c.v)
		}
	}
	if got := tr.ToViewRect(model); !rectsClose(got, view, 1e-9) {
		t.Errorf("ToViewRect(model) = %v, want %v", got, view)
	}
	// Extrapolation outside the reference rectangles.
	if got := tr.ToView(Pt(6, 1)); !pointsClose(got, Pt(1610, 20), 1e-9) {
		t.Errorf("ToView(6, 1) = %v, want (1610, 20)", got)
	}
}

func TestFromRectMappingInvalid(t *testing.T) {
	good := NewRect(0, 0, 10, 10)
	tests := []struct {
		name        string
		model, view Rect
	}{
		{"zero model width", NewRect(0, 0, 0, 10), good},
		{"negative model height", NewRect(0, 0, 10, -1), good},
		{"zero view height", good, NewRect(5, 5, 10, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := FromRectMapping(tt.model, tt.view)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("FromRectMapping() error = %v, want ErrInvalidArgument", err)
			}
			if tr != nil {
				t.Errorf("FromRectMapping() = %v, want nil", tr)
			}
		})
	}
}

func TestRectTransformWithFlippedAxis(t *testing.T) {
	tr := mustTransform(t)(FromPointMappingInvertedY(Pt(0, 0), Pt(400, 300), 50))
	got := tr.ToViewRect(NewRect(0, 0, 2, 1))
	want := NewRect(400, 250, 100, 50)
	if !rectsClose(got, want, 1e-12) {
		t.Errorf("ToViewRect = %v, want %v", got, want)
	}
	// The origin is the minimum corner, not the image of (0, 0) at (400, 300).
	if unit := tr.ToViewRect(NewRect(0, 0, 1, 1)); !rectsClose(unit, NewRect(400, 250, 50, 50), 1e-12) {
		t.Errorf("ToViewRect(unit) = %v, want (400,250,50,50)", unit)
	}
	if back := tr.ToModelRect(got); !rectsClose(back, NewRect(0, 0, 2, 1), 1e-12) {
		t.Errorf("ToModelRect = %v, want (0,0,2,1)", back)
	}
	if size := tr.ToViewDeltaRect(NewRect(0, 0, 2, 1)); !rectsClose(size, NewRect(0, -50, 100, 50), 1e-12) {
		t.Errorf("ToViewDeltaRect = %v, want (0,-50,100,50)", size)
	}
	if size := tr.ToModelDeltaRect(NewRect(0, 0, 100, 50)); !rectsClose(size, NewRect(0, -1, 2, 1), 1e-12) {
		t.Errorf("ToModelDeltaRect = %v, want (0,-1,2,1)", size)
	}
}

func TestCurveTransformLeavesArgumentAlone(t *testing.T) {
	tr := mustTransform(t)(FromPointMappingInvertedY(Pt(0, 0), Pt(400, 300), 50))
	c := FromPoints([]Point{{0, 0}, {1, 0}, {1, 1}}, true)
	before := c.Segments()

	view := tr.ToViewCurve(c)
	if got := view.At(2); !pointsClose(got, Pt(450, 250), 1e-12) {
		t.Errorf("ToViewCurve point 2 = %v, want (450, 250)", got)
	}
	for i, s := range c.Segments() {
		if s != before[i] {
			t.Fatalf("ToViewCurve modified its argument at segment %d", i)
		}
	}

	model := tr.ToModelCurve(view)
	for i := range c.Len() {
		if !pointsClose(model.At(i), c.At(i), 1e-12) {
			t.Errorf("ToModelCurve point %d = %v, want %v", i, model.At(i), c.At(i))
		}
	}
	if !view.Contains(430, 280) || view.Contains(410, 260) {
		t.Error("view-space triangle hit test disagrees with its model-space shape")
	}
}

func TestSetScale(t *testing.T) {
	tr := mustTransform(t)(FromOffsetScale(Pt(10, 20), 2, 4))

	if err := tr.SetScale(5, -5); err != nil {
		t.Fatalf("SetScale() error = %v", err)
	}
	if got := tr.ToView(Pt(1, 1)); got != Pt(15, 15) {
		t.Errorf("ToView after SetScale = %v, want (15, 15)", got)
	}
	if got := tr.ToModel(Pt(15, 15)); !pointsClose(got, Pt(1, 1), 1e-12) {
		t.Errorf("inverse not recomputed: ToModel = %v", got)
	}
	if got := tr.ToViewDelta(Pt(1, 1)); got != Pt(5, -5) {
		t.Errorf("delta not recomputed: ToViewDelta = %v", got)
	}

	if err := tr.SetScaleX(3); err != nil {
		t.Fatalf("SetScaleX() error = %v", err)
	}
	if got := tr.Scale(); got != Pt(3, -5) {
		t.Errorf("Scale() after SetScaleX = %v, want (3, -5)", got)
	}
	if err := tr.SetScaleY(7); err != nil {
		t.Fatalf("SetScaleY() error = %v", err)
	}
	if tr.ScaleX() != 3 || tr.ScaleY() != 7 {
		t.Errorf("scale = (%v, %v), want (3, 7)", tr.ScaleX(), tr.ScaleY())
	}
}

func TestSetScaleDegenerateKeepsState(t *testing.T) {
	tr := mustTransform(t)(FromScale(2, 3))
	before := *tr

	for name, set := range map[string]func() error{
		"both": func() error { return tr.SetScale(0, 0) },
		"x":    func() error { return tr.SetScaleX(0) },
		"y":    func() error { return tr.SetScaleY(0) },
	} {
		if err := set(); !errors.Is(err, ErrDegenerateTransform) {
			t.Errorf("%s: error = %v, want ErrDegenerateTransform", name, err)
		}
		if *tr != before {
			t.Errorf("%s: failed setter modified the transform", name)
		}
	}
}

func TestDegenerateFactories(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Transform, error)
	}{
		{"zero scale", func() (*Transform, error) { return FromScale(0, 1) }},
		{"zero uniform", func() (*Transform, error) { return FromUniformScale(0) }},
		{"zero offset scale", func() (*Transform, error) { return FromOffsetScale(Pt(1, 1), 1, 0) }},
		{"zero inverted", func() (*Transform, error) { return FromPointMappingInvertedY(Pt(0, 0), Pt(1, 1), 0) }},
		{"singular matrix", func() (*Transform, error) { return NewTransform(Matrix{A: 1, B: 1, D: 1, E: 1}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.make()
			if !errors.Is(err, ErrDegenerateTransform) {
				t.Errorf("error = %v, want ErrDegenerateTransform", err)
			}
			if tr != nil {
				t.Error("degenerate factory returned a transform")
			}
		})
	}
}
