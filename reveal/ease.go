package reveal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/glyphtrace/internal/geom"
)

// CubicBezier is a CSS timing function with control points (X1, Y1) and
// (X2, Y2); the end points are fixed at (0, 0) and (1, 1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Standard easing curves.
var (
	EaseInOut = CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
	EaseOut   = CubicBezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1}
	Linear    = CubicBezier{X1: 0, Y1: 0, X2: 1, Y2: 1}
)

// At returns the eased progress for linear progress x in [0, 1].
// Values outside the interval are clamped.
func (c CubicBezier) At(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return bezierComponent(c.Y1, c.Y2, c.solveT(x))
}

// solveT finds the curve parameter whose x component equals x.
func (c CubicBezier) solveT(x float64) float64 {
	a := 1 + 3*c.X1 - 3*c.X2
	b := 3*c.X2 - 6*c.X1
	k := 3 * c.X1
	if math.Abs(a) < 1e-12 && math.Abs(b) < 1e-12 {
		if k == 0 {
			return x
		}
		return x / k
	}
	if roots := geom.SolveCubicInUnitInterval(a, b, k, -x); len(roots) > 0 {
		return roots[0]
	}
	// Numerical miss near the end points: x(t) is monotonic, bisect.
	lo, hi := 0.0, 1.0
	for range 64 {
		mid := (lo + hi) / 2
		if bezierComponent(c.X1, c.X2, mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// bezierComponent evaluates one axis of the curve at t.
func bezierComponent(p1, p2, t float64) float64 {
	mt := 1 - t
	return 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t
}

// CSS returns the curve as a CSS timing function.
func (c CubicBezier) CSS() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", f(c.X1), f(c.Y1), f(c.X2), f(c.Y2))
}
