package glyph

import (
	"fmt"
	"log/slog"

	"github.com/edusim/mvt"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/bidi"
)

// Text shapes s with HarfBuzz and returns the outlines of its glyphs placed
// along the baseline, starting at the origin. Kerning and ligatures come
// from the font. Right-to-left runs are shaped right to left and all runs
// are laid out in visual order.
func (f *Font) Text(s string, size float64) (*mvt.Curve, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	out := mvt.NewCurve()
	if s == "" {
		return out, nil
	}

	runes := []rune(s)
	face := font.NewFace(f.shapes)
	shaper := f.shapers.Get().(*shaping.HarfbuzzShaper)
	defer f.shapers.Put(shaper)

	var pen float64
	for _, r := range bidiRuns(s, len(runes)) {
		output := shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: r.dir,
			Face:      face,
			Size:      toFixed(size),
			Script:    detectScript(runes[r.start:r.end]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range output.Glyphs {
			outline, err := f.Outline(sfnt.GlyphIndex(g.GlyphID), size) //nolint:gosec // sfnt glyph indices are 16 bit
			if err != nil {
				return nil, fmt.Errorf("glyph: text %q: %w", s, err)
			}
			// Shaper offsets are y up.
			out.Add(outline.Translate(pen+fromFixed(g.XOffset), -fromFixed(g.YOffset)))
			pen += fromFixed(g.Advance)
		}
	}
	return out, nil
}

// run is a range of runes [start, end) with a single direction.
type run struct {
	start, end int
	dir        di.Direction
}

// bidiRuns splits s into directional runs in visual order. If the bidi
// algorithm fails, the whole string is one left-to-right run.
func bidiRuns(s string, n int) []run {
	whole := []run{{start: 0, end: n, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		mvt.Logger().Debug("glyph: bidi failed", slog.String("text", s), slog.Any("err", err))
		return whole
	}
	ordering, err := p.Order()
	if err != nil {
		mvt.Logger().Debug("glyph: bidi failed", slog.String("text", s), slog.Any("err", err))
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	covered := 0
	for i := range ordering.NumRuns() {
		r := ordering.Run(i)
		// Pos is rune based with an inclusive end.
		start, end := r.Pos()
		end = min(end+1, n)
		if start < 0 || start >= end {
			continue
		}
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{start: start, end: end, dir: dir})
		covered += end - start
	}
	if covered != n {
		mvt.Logger().Debug("glyph: bidi runs do not cover the text",
			slog.String("text", s), slog.Int("runes", n), slog.Int("covered", covered))
		return whole
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
