package geom

import "math"

// DefaultTolerance is the flattening tolerance in pixels.
const DefaultTolerance = 0.1

// maxSubdivisions bounds the number of line segments produced for a
// single curve.
const maxSubdivisions = 256

// subdivisions returns the number of uniform steps needed to approximate a
// curve whose control polygon deviates from its chord by dev.
func subdivisions(dev, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	n := int(math.Ceil(math.Sqrt(dev / tolerance)))
	return min(max(n, 1), maxSubdivisions)
}

// Flatten appends points approximating the curve (excluding P0) to dst.
func (q QuadBez) Flatten(dst []Point, tolerance float64) []Point {
	dev := q.P0.Sub(q.P1.Mul(2)).Add(q.P2).Length() / 4
	n := subdivisions(dev, tolerance)
	for i := 1; i <= n; i++ {
		dst = append(dst, q.Eval(float64(i)/float64(n)))
	}
	return dst
}

// Flatten appends points approximating the curve (excluding P0) to dst.
func (c CubicBez) Flatten(dst []Point, tolerance float64) []Point {
	dd1 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2).Length()
	dd2 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3).Length()
	dev := 0.75 * math.Max(dd1, dd2)
	n := subdivisions(dev, tolerance)
	for i := 1; i <= n; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(n)))
	}
	return dst
}

// PolylineLength returns the summed length of consecutive segments.
func PolylineLength(pts []Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i].Distance(pts[i-1])
	}
	return l
}
