package raster

import "github.com/edusim/mvt"

// Option configures Fill and Paint.
//
// Example:
//
//	// Draw a model-space shape, nudged half a pixel for crisp edges.
//	raster.Paint(img, shape, color.Black,
//		raster.WithTransform(t),
//		raster.WithOffset(mvt.Pt(0.5, 0.5)))
type Option func(*options)

type options struct {
	transform *mvt.Transform
	offset    mvt.Point
}

func defaultOptions() options {
	return options{}
}

// WithTransform maps the curve from model to view space before filling.
// A nil transform is ignored.
func WithTransform(t *mvt.Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// WithOffset shifts the curve by p in view space, after any transform.
func WithOffset(p mvt.Point) Option {
	return func(o *options) {
		o.offset = p
	}
}
