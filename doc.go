// Package mvt provides model/view transforms and piecewise Bezier curves for
// interactive simulations.
//
// # Overview
//
// Simulations keep their state in model units (meters, femtometers, arbitrary
// units) and draw it in pixels. A [Transform] maps between the two spaces, and
// a [Curve] describes vector shapes (tank outlines, phase-diagram regions,
// wire paths) that can be transformed, measured and hit tested.
//
// # Quick Start
//
//	import "github.com/edusim/mvt"
//
//	// Model origin at the view centre, 50 px per model unit, y up.
//	t, err := mvt.FromPointMappingInvertedY(mvt.Pt(0, 0), mvt.Pt(400, 300), 50)
//	if err != nil {
//		return err
//	}
//	t.ToView(mvt.Pt(1, 1)) // (450, 250)
//
//	tank := mvt.FromPoints([]mvt.Point{{X: -2, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: -2, Y: 3}}, true)
//	onScreen := t.ToViewCurve(tank)
//	onScreen.Contains(400, 250) // true
//
// # Architecture
//
// The package is organized into:
//   - Primitives: Point, Rect, Matrix, SolveQuadratic, SolveCubic
//   - Transform: factories, point/rect/curve mapping, delta variants
//   - Curve: segment building, affine transforms, bounds, winding queries
//
// Sub-packages build on the core: raster fills curves into images and glyph
// turns font outlines into curves.
//
// # Coordinate System
//
// View space follows the usual pixel convention: origin at top-left, x to
// the right, y down. Model space is whatever the simulation uses; use
// [FromPointMappingInvertedY] when the model's y axis points up.
//
// # Hit Testing
//
// [Curve.Contains] uses the nonzero winding rule. Every subpath is treated as
// closed. [Curve.Intersects] is a fast heuristic based on rays cast along the
// rectangle's sides; see its documentation for the cases it misses.
package mvt
