package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// Instance implements ParsedFont.Instance. sfnt has no variation support,
// so the weight is never applied.
func (f *ximageParsedFont) Instance(float64) (Instance, bool) {
	upem := int(f.font.UnitsPerEm())
	return &ximageInstance{font: f.font, ppem: fixed.I(upem)}, false
}

// ximageInstance implements Instance. sfnt.Buffer is not safe for
// concurrent use, hence one per instance.
type ximageInstance struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
}

// Shape implements Instance.Shape with nominal glyph mapping and kern-table
// pair kerning. With ppem equal to units-per-em all values are font units.
func (i *ximageInstance) Shape(line string) []ShapedGlyph {
	var (
		glyphs []ShapedGlyph
		pen    float64
		prev   sfnt.GlyphIndex
		hasPrv bool
	)
	for _, r := range line {
		gid, err := i.font.GlyphIndex(&i.buf, r)
		if err != nil {
			gid = 0
		}
		if hasPrv {
			if k, err := i.font.Kern(&i.buf, prev, gid, i.ppem, font.HintingNone); err == nil {
				pen += fixedToFloat(k)
			}
		}
		adv, err := i.font.GlyphAdvance(&i.buf, gid, i.ppem, font.HintingNone)
		if err != nil {
			adv = 0
		}
		glyphs = append(glyphs, ShapedGlyph{
			GID:     GlyphID(gid),
			X:       pen,
			Advance: fixedToFloat(adv),
		})
		pen += fixedToFloat(adv)
		prev, hasPrv = gid, true
	}
	return glyphs
}

// Outline implements Instance.Outline. sfnt returns y-down segments, they
// are flipped back to the font's y-up convention.
func (i *ximageInstance) Outline(gid GlyphID) (GlyphOutline, error) {
	segments, err := i.font.LoadGlyph(&i.buf, sfnt.GlyphIndex(gid), i.ppem, nil)
	if err != nil {
		return GlyphOutline{}, err
	}

	out := GlyphOutline{Segments: make([]OutlineSegment, 0, len(segments))}
	for _, seg := range segments {
		s := OutlineSegment{}
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op, n = OutlineOpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			s.Op, n = OutlineOpCubicTo, 3
		}
		for k := 0; k < n; k++ {
			s.Points[k] = fixedPointToOutline(seg.Args[k])
		}
		out.Segments = append(out.Segments, s)
	}
	return out, nil
}

// fixedPointToOutline converts a y-down fixed.Point26_6 to a y-up
// OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: -float32(p.Y) / 64.0,
	}
}

// familyName reads the family name from the font's name table. It returns
// "" when the data cannot be parsed by sfnt.
func familyName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
