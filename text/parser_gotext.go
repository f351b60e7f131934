package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// wghtTag is the OpenType tag of the weight variation axis.
var wghtTag = ot.MustNewTag("wght")

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextFont{
		font: face.Font,
		name: familyName(data),
	}, nil
}

// gotextFont implements ParsedFont. font.Font is read-only and safe for
// concurrent use, unlike font.Face.
type gotextFont struct {
	font *font.Font
	name string
}

// Name implements ParsedFont.Name.
func (f *gotextFont) Name() string {
	return f.name
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// Instance implements ParsedFont.Instance.
// font.NewFace is cheap: it wraps the shared *Font and initializes caches.
func (f *gotextFont) Instance(weight float64) (Instance, bool) {
	face := font.NewFace(f.font)
	ok := setWeight(face, weight)
	return &gotextInstance{face: face, upem: f.font.Upem()}, ok
}

// setWeight applies the wght axis. Fonts without variation tables leave
// the face at its default instance and report false.
func setWeight(face *font.Face, weight float64) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	face.SetVariations([]font.Variation{{Tag: wghtTag, Value: float32(weight)}})
	return len(face.Coords()) > 0
}

// gotextInstance implements Instance over a single font.Face.
type gotextInstance struct {
	face   *font.Face
	upem   uint16
	shaper shaping.HarfbuzzShaper
}

// Shape implements Instance.Shape using HarfBuzz shaping, so kerning and
// ligatures match what a browser would apply.
//
// The run is shaped at a size of one em per font unit so that positions
// come back in font units without fixed-point rounding.
func (i *gotextInstance) Shape(line string) []ShapedGlyph {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      i.face,
		Size:      fixed.I(int(i.upem)),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := i.shaper.Shape(input)

	glyphs := make([]ShapedGlyph, len(output.Glyphs))
	var pen float64
	for n, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[n] = ShapedGlyph{
			GID:     GlyphID(g.GlyphID),
			X:       pen + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: adv,
		}
		pen += adv
	}
	return glyphs
}

// Outline implements Instance.Outline. Variation deltas of the face are
// applied by go-text when the glyph data is built.
func (i *gotextInstance) Outline(gid GlyphID) (GlyphOutline, error) {
	data, ok := i.face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		return GlyphOutline{}, ErrUnsupportedGlyph
	}

	out := GlyphOutline{Segments: make([]OutlineSegment, 0, len(data.Segments))}
	for _, seg := range data.Segments {
		var s OutlineSegment
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			s.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			s.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			s.Op = OutlineOpCubicTo
		default:
			continue
		}
		for k, a := range seg.Args {
			s.Points[k] = OutlinePoint{X: a.X, Y: a.Y}
		}
		out.Segments = append(out.Segments, s)
	}
	return out, nil
}

// detectScript returns the script of the first non-space rune. Mixed-script
// lines are shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if isSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
