package text

// OutlinePoint represents a point in a glyph outline, in font units, y-up.
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of outline segment.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo, LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// GlyphOutline is the vector outline of a glyph: one or more contours,
// each implicitly closed.
type GlyphOutline struct {
	Segments []OutlineSegment
}

// IsEmpty returns true if the outline has no segments.
func (o GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// AppendTo appends the outline to p with its origin at (x, y) in pixel
// space. Font units are multiplied by scale and the y axis is flipped so
// the result is y-down. Every contour is closed.
func (o GlyphOutline) AppendTo(p *Path, x, y, scale float64) {
	px := func(pt OutlinePoint) float64 { return x + float64(pt.X)*scale }
	py := func(pt OutlinePoint) float64 { return y - float64(pt.Y)*scale }

	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(px(seg.Points[0]), py(seg.Points[0]))
			open = true
		case OutlineOpLineTo:
			p.LineTo(px(seg.Points[0]), py(seg.Points[0]))
		case OutlineOpQuadTo:
			p.QuadTo(px(seg.Points[0]), py(seg.Points[0]), px(seg.Points[1]), py(seg.Points[1]))
		case OutlineOpCubicTo:
			p.CubeTo(px(seg.Points[0]), py(seg.Points[0]),
				px(seg.Points[1]), py(seg.Points[1]),
				px(seg.Points[2]), py(seg.Points[2]))
		}
	}
	if open {
		p.Close()
	}
}
