package render

import (
	"math"
	"strconv"

	"github.com/gogpu/glyphtrace/text"
)

// Surface is the drawing area of a unit in pixels. Its origin is the top
// left of the unit's box, so path data in layout space needs no transform.
type Surface struct {
	X, Y          float64
	Width, Height float64
}

// SurfaceOf returns the surface for box, at least one pixel in each
// dimension. An empty box yields a 1x1 surface at the origin.
func SurfaceOf(box text.BBox) Surface {
	if box.IsEmpty() {
		return Surface{Width: 1, Height: 1}
	}
	return Surface{
		X:      box.X1,
		Y:      box.Y1,
		Width:  max(1, box.Width()),
		Height: max(1, box.Height()),
	}
}

// ViewBox returns the SVG viewBox attribute value.
func (s Surface) ViewBox() string {
	return num(s.X) + " " + num(s.Y) + " " + num(s.Width) + " " + num(s.Height)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lineGapPx(size, ratio float64) float64 {
	return math.Max(0, math.Floor(size*ratio+0.5))
}

func descender(size float64) float64 {
	return math.Ceil(size * 0.25)
}
