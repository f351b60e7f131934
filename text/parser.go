package text

import "sync"

// Registered parser names.
const (
	// ParserGoText parses with github.com/go-text/typesetting and supports
	// variable font axes.
	ParserGoText = "gotext"

	// ParserXImage parses with golang.org/x/image/font/sfnt. Variable axes
	// are not supported; fonts render at their default instance.
	ParserXImage = "ximage"
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserGoText

// FontParser is an interface for font parsing backends.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file. Implementations are read-only
// after parsing and safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// Instance returns a shaping and outline view of the font with the
	// weight axis set to weight. ok is false when the weight could not be
	// applied; the instance is then usable at the default weight.
	//
	// An Instance is not safe for concurrent use.
	Instance(weight float64) (inst Instance, ok bool)
}

// Instance shapes text and extracts glyph outlines at one variation
// instance of a font. All coordinates are in font units, y-up.
type Instance interface {
	// Shape positions the glyphs of a single line of text.
	Shape(line string) []ShapedGlyph

	// Outline returns the vector outline of a glyph.
	Outline(gid GlyphID) (GlyphOutline, error)
}

// GlyphID is a glyph index within a font.
type GlyphID uint32

// ShapedGlyph is a positioned glyph in font units, relative to the start
// of the line on the baseline.
type ShapedGlyph struct {
	GID     GlyphID
	X, Y    float64
	Advance float64
}

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		ParserGoText: gotextParser{},
		ParserXImage: ximageParser{},
	}
)

// RegisterParser registers a custom font parser.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
