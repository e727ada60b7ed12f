package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrEmptyFontData is returned when Parse is given no data.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrNoGlyph is returned when a font has no glyph for a rune or index.
	ErrNoGlyph = errors.New("glyph: no such glyph")
)
