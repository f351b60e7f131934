package render

import (
	"github.com/gogpu/glyphtrace/text"
)

// Mode is the rendering branch of a unit. It is either VectorOutline or
// FallbackText.
type Mode interface {
	// Surface returns the box the unit is drawn in.
	Surface() Surface

	isMode()
}

// VectorOutline renders glyph outlines.
type VectorOutline struct {
	Path     *text.Path
	PathData string
	BBox     text.BBox

	// Length is the arc length of the outline in pixels.
	Length float64
}

// NewOutline returns the outline mode for path drawn inside box.
func NewOutline(path *text.Path, box text.BBox) VectorOutline {
	return VectorOutline{
		Path:     path,
		PathData: path.Data(text.PathDataPrecision),
		BBox:     box,
		Length:   path.Length(),
	}
}

// Surface implements Mode.
func (o VectorOutline) Surface() Surface { return SurfaceOf(o.BBox) }

func (VectorOutline) isMode() {}

// FallbackText renders plain text lines.
type FallbackText struct {
	Lines []string

	// Widths holds the measured inline length of every line.
	Widths []float64

	// MeasuredLength is the sum of Widths. The stroke dash animates over
	// this length.
	MeasuredLength float64

	Size    float64
	Weight  float64
	LineGap float64
	Family  string
}

// Surface implements Mode. The box spans the widest line and every
// baseline plus a descender allowance.
func (f FallbackText) Surface() Surface {
	var w float64
	for _, lw := range f.Widths {
		w = max(w, lw)
	}
	n := float64(len(f.Lines))
	gap := lineGapPx(f.Size, f.LineGap)
	h := n*f.Size + max(n-1, 0)*gap + descender(f.Size)
	return SurfaceOf(text.BBox{X2: w, Y2: h})
}

func (FallbackText) isMode() {}

// Baseline returns the baseline of line i.
func (f FallbackText) Baseline(i int) float64 {
	return float64(i+1)*f.Size + float64(i)*lineGapPx(f.Size, f.LineGap)
}
