package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/glyphtrace/internal/geom"
	"github.com/gogpu/glyphtrace/reveal"
)

// RasterOptions configures Rasterize.
type RasterOptions struct {
	// Scale multiplies the surface size. 0 means 1.
	Scale float64

	// StrokeWidth is the outline width in surface pixels. 0 means 1.
	StrokeWidth float64

	// Ink is the stroke and fill color. nil means black.
	Ink color.Color

	// Background fills the image first. nil leaves it transparent.
	Background color.Color
}

// Rasterize draws one frame of an outline: the first f.Stroke of the
// outline's arc length as a stroke, and the fill at opacity f.Fill. The
// frame's opacity and vertical offset apply to both.
func Rasterize(o VectorOutline, f reveal.Frame, opts RasterOptions) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	sw := opts.StrokeWidth
	if sw <= 0 {
		sw = 1
	}
	ink := opts.Ink
	if ink == nil {
		ink = color.Black
	}

	s := o.Surface()
	w := max(1, int(math.Ceil(s.Width*scale)))
	h := max(1, int(math.Ceil(s.Height*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if o.Path == nil || f.Opacity <= 0 {
		return dst
	}

	// Maps surface space to image pixels.
	tx := func(p geom.Point) (float32, float32) {
		return float32((p.X - s.X) * scale), float32((p.Y - s.Y + f.OffsetY) * scale)
	}

	polys := o.Path.Flatten(geom.DefaultTolerance / scale)

	if f.Fill > 0 {
		z := vector.NewRasterizer(w, h)
		for _, poly := range polys {
			z.MoveTo(tx(poly[0]))
			for _, p := range poly[1:] {
				z.LineTo(tx(p))
			}
			z.ClosePath()
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(withAlpha(ink, f.Fill*f.Opacity)), image.Point{})
	}

	if f.Stroke > 0 {
		budget := f.Stroke * o.Length
		if f.Stroke >= 1 {
			budget = math.Inf(1)
		}
		z := vector.NewRasterizer(w, h)
		half := sw * scale / 2
		for _, poly := range polys {
			for i := 1; i < len(poly) && budget > 0; i++ {
				a, b := poly[i-1], poly[i]
				seg := a.Distance(b)
				if seg == 0 {
					continue
				}
				if seg > budget {
					b = a.Lerp(b, budget/seg)
					seg = budget
				}
				budget -= seg
				strokeSegment(z, tx, a, b, half/scale)
			}
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(withAlpha(ink, f.Opacity)), image.Point{})
	}
	return dst
}

// strokeSegment adds the rectangle covering segment a-b with the given
// half width. All rectangles wind the same way so overlaps accumulate.
func strokeSegment(z *vector.Rasterizer, tx func(geom.Point) (float32, float32), a, b geom.Point, half float64) {
	d := b.Sub(a)
	n := geom.Pt(-d.Y, d.X).Mul(half / d.Length())
	z.MoveTo(tx(a.Add(n)))
	z.LineTo(tx(b.Add(n)))
	z.LineTo(tx(b.Sub(n)))
	z.LineTo(tx(a.Sub(n)))
	z.ClosePath()
}

func withAlpha(c color.Color, alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}
