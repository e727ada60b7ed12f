package glyph

import (
	"errors"
	"fmt"
	"math"

	"github.com/edusim/mvt"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Outline returns the outline of glyph gid at size pixels per em. The
// curve is in pixels with y growing down and the glyph origin at (0, 0),
// so ascenders have negative y. Every contour is closed. Glyphs without
// contours, such as the space, yield an empty curve. Outlines are cached
// per font; the returned curve belongs to the caller.
func (f *Font) Outline(gid sfnt.GlyphIndex, size float64) (*mvt.Curve, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if int(gid) >= f.outlines.NumGlyphs() {
		return nil, fmt.Errorf("glyph: outline of %d: %w", gid, ErrNoGlyph)
	}

	key := outlineKey{gid: gid, size: toFixed(size)}
	if c, ok := f.cache.get(key); ok {
		return c, nil
	}

	buf := f.buffer()
	defer f.buffers.Put(buf)
	segs, err := f.outlines.LoadGlyph(buf, gid, key.size, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, fmt.Errorf("glyph: outline of %d: %w", gid, ErrNoGlyph)
		}
		return nil, fmt.Errorf("glyph: outline of %d: %w", gid, err)
	}

	c := mvt.NewCurve()
	for i, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if i > 0 {
				c.Close()
			}
			p := toPoint(s.Args[0])
			c.MoveTo(p.X, p.Y)
		case sfnt.SegmentOpLineTo:
			p := toPoint(s.Args[0])
			c.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			ctrl, p := toPoint(s.Args[0]), toPoint(s.Args[1])
			c.QuadTo(ctrl.X, ctrl.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			c1, c2, p := toPoint(s.Args[0]), toPoint(s.Args[1]), toPoint(s.Args[2])
			c.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	c.Close()
	f.cache.add(key, c)
	return c, nil
}

// Glyph returns the outline of the glyph the font maps r to.
func (f *Font) Glyph(r rune, size float64) (*mvt.Curve, error) {
	gid, err := f.GlyphIndex(r)
	if err != nil {
		return nil, err
	}
	return f.Outline(gid, size)
}

// Advance returns the unhinted horizontal advance of glyph gid at size
// pixels per em.
func (f *Font) Advance(gid sfnt.GlyphIndex, size float64) (float64, error) {
	if err := checkSize(size); err != nil {
		return 0, err
	}
	buf := f.buffer()
	defer f.buffers.Put(buf)
	adv, err := f.outlines.GlyphAdvance(buf, gid, toFixed(size), font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph: advance of %d: %w", gid, err)
	}
	return fromFixed(adv), nil
}

func checkSize(size float64) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("glyph: size %g: %w", size, mvt.ErrInvalidArgument)
	}
	return nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toPoint(p fixed.Point26_6) mvt.Point {
	return mvt.Pt(fromFixed(p.X), fromFixed(p.Y))
}
