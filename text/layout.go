package text

import (
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphtrace"
)

// LineLayout is the outline of one line of a block.
type LineLayout struct {
	Text     string
	Baseline float64
	Path     *Path
	Data     string
	BBox     BBox
}

// LayoutResult is the outline of a multi-line block.
type LayoutResult struct {
	Lines []LineLayout

	// Path concatenates every line path.
	Path *Path

	// PathData is the serialized Path.
	PathData string

	// BBox covers every non-empty line, rounded outward to whole pixels.
	// It is (0, 0, size, size) when no line produced an outline.
	BBox BBox
}

// Layout converts s into vector outlines at size pixels per em.
//
// Lines are separated by "\n" or "\r\n". Line i sits on the baseline
// (i+1)*size + i*gap with gap = max(0, round(size*lineGap)). When no line
// yields an outline, the result is returned together with
// ErrEmptyGlyphPath.
func Layout(h *Handle, s string, size, lineGap float64) (LayoutResult, error) {
	if h == nil {
		return LayoutResult{}, ErrNoFont
	}
	s = norm.NFC.String(s)
	gap := math.Max(0, roundHalfUp(size*lineGap))

	res := LayoutResult{Path: &Path{}}
	box := EmptyBBox()
	for i, line := range splitLines(s) {
		baseline := float64(i+1)*size + float64(i)*gap
		p := outlineRun(h, line, 0, baseline, size)
		ll := LineLayout{
			Text:     line,
			Baseline: baseline,
			Path:     p,
			Data:     p.Data(PathDataPrecision),
			BBox:     p.Bounds(),
		}
		res.Lines = append(res.Lines, ll)
		if ll.Data == "" || ll.BBox.IsEmpty() {
			continue
		}
		box = box.Union(ll.BBox)
		res.Path.Extend(p)
	}

	res.PathData = res.Path.Data(PathDataPrecision)
	if box.IsEmpty() {
		res.BBox = BBox{X2: size, Y2: size}
	} else {
		res.BBox = box.RoundOut()
	}
	if res.PathData == "" {
		return res, ErrEmptyGlyphPath
	}
	return res, nil
}

// TokenLayout is the outline of a single token laid out on its own.
type TokenLayout struct {
	Token Token

	// Index is the token's position in reading order, spaces included.
	Index int

	Path     *Path
	PathData string

	// BBox is the exact, unrounded box of the word. Whitespace tokens and
	// words without outline get (0, 0, size, size).
	BBox BBox

	// Advance is the shaped width of the token in pixels.
	Advance float64
}

// Empty reports whether the token has nothing to draw as an outline.
func (t TokenLayout) Empty() bool {
	return t.PathData == ""
}

// LayoutTokens tokenizes s and lays out every word at baseline size.
// Whitespace tokens get their advance only and no path.
func LayoutTokens(h *Handle, s string, size float64) ([]TokenLayout, error) {
	if h == nil {
		return nil, ErrNoFont
	}
	tokens := Tokenize(s)
	out := make([]TokenLayout, 0, len(tokens))
	for i, tok := range tokens {
		tl := TokenLayout{Token: tok, Index: i, Path: &Path{}, BBox: BBox{X2: size, Y2: size}}
		if tok.Space {
			tl.Advance = runAdvance(h, tok.Text, size)
		} else {
			tl.Path = outlineRun(h, tok.Text, 0, size, size)
			tl.PathData = tl.Path.Data(PathDataPrecision)
			if b := tl.Path.Bounds(); tl.PathData != "" && !b.IsEmpty() {
				tl.BBox = b
			}
			tl.Advance = runAdvance(h, tok.Text, size)
		}
		out = append(out, tl)
	}
	return out, nil
}

// TokensBBox returns the union of every non-empty word box, rounded
// outward, or an empty box when there is none.
func TokensBBox(tokens []TokenLayout) BBox {
	box := EmptyBBox()
	for _, t := range tokens {
		if t.Token.Space || t.Empty() {
			continue
		}
		box = box.Union(t.BBox)
	}
	if box.IsEmpty() {
		return box
	}
	return box.RoundOut()
}

// outlineRun shapes one line and appends every glyph outline at its pen
// position, with the line origin at (x, baseline).
func outlineRun(h *Handle, line string, x, baseline, size float64) *Path {
	p := &Path{}
	if line == "" || isBlank(line) {
		return p
	}
	scale := size / float64(h.UnitsPerEm())
	h.use(func(inst Instance) {
		for _, g := range inst.Shape(line) {
			o, err := inst.Outline(g.GID)
			if err != nil {
				glyphtrace.Logger().Debug("text: glyph skipped", "gid", g.GID, "err", err)
				continue
			}
			o.AppendTo(p, x+g.X*scale, baseline-g.Y*scale, scale)
		}
	})
	return p
}

// runAdvance returns the shaped width of s in pixels.
func runAdvance(h *Handle, s string, size float64) float64 {
	var adv float64
	h.use(func(inst Instance) {
		for _, g := range inst.Shape(s) {
			adv += g.Advance
		}
	})
	return adv * size / float64(h.UnitsPerEm())
}

// roundHalfUp rounds to the nearest integer, halves towards +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
