// Package glyph turns font outlines into curves.
//
// A glyph or a whole shaped string becomes an [mvt.Curve] in view units: one
// unit per pixel at the requested size, y growing down, the pen starting at
// the origin on the baseline. Labels can then be bounded, hit tested and
// mapped through a [mvt.Transform] like any other shape.
//
//	label, err := glyph.Default().Text("Pressure", 18)
//	if err != nil {
//		return err
//	}
//	label.Translate(40, 30)
//
// Fonts are parsed twice: once with golang.org/x/image/font/sfnt for
// outlines and once with github.com/go-text/typesetting for HarfBuzz shaping.
// A Font is safe for concurrent use.
package glyph

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/edusim/mvt"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed OpenType or TrueType font.
type Font struct {
	outlines *sfnt.Font

	// shapes is read-only and shared; faces and shapers are not, so each
	// Text call makes a face and borrows a shaper from the pool.
	shapes  *font.Font
	shapers sync.Pool

	// buffers pools sfnt.Buffer, which must not be shared between
	// concurrent sfnt calls.
	buffers sync.Pool

	cache *outlineCache
}

var defaultFont = sync.OnceValue(func() *Font {
	f, err := Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("glyph: embedded Go Regular font: %v", err))
	}
	return f
})

// Default returns the Go Regular font. It is parsed on first use.
func Default() *Font {
	return defaultFont()
}

// Parse parses TrueType or OpenType font data. data must not be modified
// while the Font is in use.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	outlines, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font for shaping: %w", err)
	}

	f := &Font{
		outlines: outlines,
		shapes:   face.Font,
		cache:    newOutlineCache(defaultCacheCapacity),
	}
	f.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	f.buffers.New = func() any { return &sfnt.Buffer{} }

	mvt.Logger().Debug("glyph: parsed font",
		slog.String("name", f.Name()),
		slog.Int("glyphs", outlines.NumGlyphs()))
	return f, nil
}

// Name returns the font's family name, or "" if it has none.
func (f *Font) Name() string {
	buf := f.buffer()
	defer f.buffers.Put(buf)
	name, err := f.outlines.Name(buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.outlines.NumGlyphs()
}

// GlyphIndex returns the glyph for r. It returns ErrNoGlyph if the font
// does not map r.
func (f *Font) GlyphIndex(r rune) (sfnt.GlyphIndex, error) {
	buf := f.buffer()
	defer f.buffers.Put(buf)
	gid, err := f.outlines.GlyphIndex(buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph: index of %q: %w", r, err)
	}
	if gid == 0 {
		return 0, fmt.Errorf("glyph: index of %q: %w", r, ErrNoGlyph)
	}
	return gid, nil
}

func (f *Font) buffer() *sfnt.Buffer {
	return f.buffers.Get().(*sfnt.Buffer)
}
