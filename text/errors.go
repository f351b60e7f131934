package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyGlyphPath is returned by layout when the font produced no
	// outline for the text (blank text, unsupported glyphs).
	ErrEmptyGlyphPath = errors.New("text: empty glyph path")

	// ErrNoFont is returned when layout is requested without a font handle.
	ErrNoFont = errors.New("text: no font")

	// ErrLoaderClosed is returned by a Loader after Close.
	ErrLoaderClosed = errors.New("text: loader closed")

	// ErrUnsupportedGlyph is returned when a glyph has no vector outline
	// (bitmap or SVG glyphs).
	ErrUnsupportedGlyph = errors.New("text: glyph has no vector outline")
)

// FontLoadError is returned when a font cannot be fetched or parsed.
// Callers are expected to fall back to plain-text rendering.
type FontLoadError struct {
	URL    string
	Weight float64
	Err    error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("text: load font %q (wght %g): %v", e.URL, e.Weight, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned by HTTPFetcher for non-2xx responses.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("text: fetch %q: unexpected status %d", e.URL, e.StatusCode)
}
