package text

import (
	"math"

	"github.com/gogpu/glyphtrace/internal/geom"
)

// CommandType identifies a path command by its SVG letter.
type CommandType byte

// Path command types.
const (
	CmdMoveTo CommandType = 'M'
	CmdLineTo CommandType = 'L'
	CmdQuadTo CommandType = 'Q'
	CmdCubeTo CommandType = 'C'
	CmdClose  CommandType = 'Z'
)

// Command is a single path command. X1/Y1 and X2/Y2 are control points
// (used by Q and C), X/Y is the end point (unused by Z).
type Command struct {
	Type   CommandType
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// Path is a vector outline in pixel space, y-down.
//
// The zero value is an empty path ready to use.
type Path struct {
	Commands []Command
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, Command{Type: CmdMoveTo, X: x, Y: y})
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, Command{Type: CmdLineTo, X: x, Y: y})
}

// QuadTo adds a quadratic Bézier curve with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x, y float64) {
	p.Commands = append(p.Commands, Command{Type: CmdQuadTo, X1: x1, Y1: y1, X: x, Y: y})
}

// CubeTo adds a cubic Bézier curve with control points (x1, y1), (x2, y2).
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	p.Commands = append(p.Commands, Command{Type: CmdCubeTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Commands = append(p.Commands, Command{Type: CmdClose})
}

// Extend appends all commands of other to p.
func (p *Path) Extend(other *Path) {
	if other == nil {
		return
	}
	p.Commands = append(p.Commands, other.Commands...)
}

// Empty reports whether the path draws nothing.
func (p *Path) Empty() bool {
	if p == nil {
		return true
	}
	for _, c := range p.Commands {
		if c.Type != CmdMoveTo && c.Type != CmdClose {
			return false
		}
	}
	return true
}

// walk calls the visitor functions for every drawing segment with explicit
// start points. Close emits the implicit closing line.
func (p *Path) walk(move func(geom.Point), line func(a, b geom.Point), quad func(geom.QuadBez), cubic func(geom.CubicBez)) {
	var cur, start geom.Point
	for _, c := range p.Commands {
		end := geom.Pt(c.X, c.Y)
		switch c.Type {
		case CmdMoveTo:
			cur, start = end, end
			move(end)
		case CmdLineTo:
			line(cur, end)
			cur = end
		case CmdQuadTo:
			quad(geom.QuadBez{P0: cur, P1: geom.Pt(c.X1, c.Y1), P2: end})
			cur = end
		case CmdCubeTo:
			cubic(geom.CubicBez{P0: cur, P1: geom.Pt(c.X1, c.Y1), P2: geom.Pt(c.X2, c.Y2), P3: end})
			cur = end
		case CmdClose:
			if cur != start {
				line(cur, start)
			}
			cur = start
		}
	}
}

// Bounds returns the exact bounding box of the path, curve extrema
// included. An empty path returns an empty box.
func (p *Path) Bounds() BBox {
	b := EmptyBBox()
	if p == nil {
		return b
	}
	add := func(r geom.Rect) { b = b.Union(bboxFromRect(r)) }
	p.walk(
		func(pt geom.Point) { add(geom.NewRect(pt, pt)) },
		func(a, c geom.Point) { add(geom.NewRect(a, c)) },
		func(q geom.QuadBez) { add(q.BoundingBox()) },
		func(c geom.CubicBez) { add(c.BoundingBox()) },
	)
	return b
}

// Flatten approximates the path by polylines, one per subpath. Closed
// subpaths end at their start point.
func (p *Path) Flatten(tolerance float64) [][]geom.Point {
	var (
		out [][]geom.Point
		cur []geom.Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	p.walk(
		func(pt geom.Point) { flush(); cur = []geom.Point{pt} },
		func(_, c geom.Point) { cur = append(cur, c) },
		func(q geom.QuadBez) { cur = q.Flatten(cur, tolerance) },
		func(c geom.CubicBez) { cur = c.Flatten(cur, tolerance) },
	)
	flush()
	return out
}

// Length returns the total arc length of the path, closing segments
// included. It is what an SVG renderer measures for stroke dashing.
func (p *Path) Length() float64 {
	var l float64
	for _, poly := range p.Flatten(geom.DefaultTolerance) {
		l += geom.PolylineLength(poly)
	}
	return l
}

// BBox is an axis-aligned bounding box (x1, y1) - (x2, y2), y-down.
type BBox struct {
	X1, Y1, X2, Y2 float64
}

// EmptyBBox returns the identity element for Union.
func EmptyBBox() BBox {
	return BBox{X1: math.Inf(1), Y1: math.Inf(1), X2: math.Inf(-1), Y2: math.Inf(-1)}
}

func bboxFromRect(r geom.Rect) BBox {
	return BBox{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// IsEmpty reports whether the box holds no point.
func (b BBox) IsEmpty() bool {
	return !(b.X1 <= b.X2 && b.Y1 <= b.Y2) ||
		math.IsInf(b.X1, 0) || math.IsInf(b.Y1, 0) || math.IsInf(b.X2, 0) || math.IsInf(b.Y2, 0)
}

// Union returns the componentwise min/max of both boxes.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		X1: math.Min(b.X1, o.X1),
		Y1: math.Min(b.Y1, o.Y1),
		X2: math.Max(b.X2, o.X2),
		Y2: math.Max(b.Y2, o.Y2),
	}
}

// Contains reports whether o lies within b. An empty o is contained in
// every box.
func (b BBox) Contains(o BBox) bool {
	if o.IsEmpty() {
		return true
	}
	return o.X1 >= b.X1 && o.Y1 >= b.Y1 && o.X2 <= b.X2 && o.Y2 <= b.Y2
}

// RoundOut rounds left/top down and right/bottom up to whole pixels.
func (b BBox) RoundOut() BBox {
	return BBox{
		X1: math.Floor(b.X1),
		Y1: math.Floor(b.Y1),
		X2: math.Ceil(b.X2),
		Y2: math.Ceil(b.Y2),
	}
}

// Width returns x2 - x1.
func (b BBox) Width() float64 { return b.X2 - b.X1 }

// Height returns y2 - y1.
func (b BBox) Height() float64 { return b.Y2 - b.Y1 }
