// Package raster fills curves into Go images.
//
// Shapes are scan converted with golang.org/x/image/vector using the nonzero
// winding rule, so a filled pixel agrees with [mvt.Curve.Contains] at its
// centre (up to anti-aliasing along the edges). Open subpaths are closed
// implicitly.
//
// Usage:
//
//	mask := raster.Fill(curve, 640, 480, raster.WithTransform(t))
//	raster.Paint(img, curve, color.Black, raster.WithTransform(t))
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/edusim/mvt"
	"golang.org/x/image/vector"
)

// Fill returns the anti-aliased coverage mask of c on a width x height
// canvas. Curve coordinates are view pixels unless WithTransform is given.
func Fill(c *mvt.Curve, width, height int, opts ...Option) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return mask
	}
	ras := vector.NewRasterizer(width, height)
	ras.DrawOp = draw.Src
	addCurve(ras, prepare(c, opts))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Paint composites c filled with col onto dst using draw.Over. The curve's
// origin is the top-left corner of dst's bounds.
func Paint(dst draw.Image, c *mvt.Curve, col color.Color, opts ...Option) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	addCurve(ras, prepare(c, opts))
	ras.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// prepare returns the curve in view space. c is never modified.
func prepare(c *mvt.Curve, opts []Option) *mvt.Curve {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.transform != nil {
		c = o.transform.ToViewCurve(c)
	}
	if o.offset != (mvt.Point{}) {
		c = c.Clone().Translate(o.offset.X, o.offset.Y)
	}
	return c
}

// addCurve feeds the curve's segments to the rasterizer. The rasterizer
// accumulates signed area, so every subpath must end where it started.
func addCurve(ras *vector.Rasterizer, c *mvt.Curve) {
	pt := func(p mvt.Point) (float32, float32) {
		return float32(p.X), float32(p.Y)
	}

	open := false
	for _, s := range c.Segments() {
		switch s := s.(type) {
		case mvt.MoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(pt(s.Point))
		case mvt.LineTo:
			ras.LineTo(pt(s.Point))
		case mvt.QuadTo:
			cx, cy := pt(s.Control)
			x, y := pt(s.Point)
			ras.QuadTo(cx, cy, x, y)
		case mvt.CubicTo:
			c1x, c1y := pt(s.Control1)
			c2x, c2y := pt(s.Control2)
			x, y := pt(s.Point)
			ras.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case mvt.Close:
			ras.ClosePath()
			open = false
			continue
		default:
			mvt.Logger().Warn("raster: skipping unknown segment", slog.String("type", fmt.Sprintf("%T", s)))
			continue
		}
		open = true
	}
	if open {
		ras.ClosePath()
	}
}
