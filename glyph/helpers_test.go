package glyph

import (
	"math"

	"github.com/edusim/mvt"
	"golang.org/x/image/font/sfnt"
)

func sfntIndex(i int) sfnt.GlyphIndex {
	return sfnt.GlyphIndex(i) //nolint:gosec // test input
}

func rectsClose(a, b mvt.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}
