package text

import (
	"math"
	"strconv"
	"strings"
)

// PathDataPrecision is the number of decimal digits used for serialized
// path data.
const PathDataPrecision = 2

// Data serializes the path as SVG path data.
//
// Integral values are written without a fraction, all others with exactly
// decimals digits. A separating space precedes non-negative values only,
// the minus sign of negative values serves as separator:
//
//	M10 20L30.50-4.25Z
func (p *Path) Data(decimals int) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for _, c := range p.Commands {
		sb.WriteByte(byte(c.Type))
		switch c.Type {
		case CmdMoveTo, CmdLineTo:
			packValues(&sb, decimals, c.X, c.Y)
		case CmdQuadTo:
			packValues(&sb, decimals, c.X1, c.Y1, c.X, c.Y)
		case CmdCubeTo:
			packValues(&sb, decimals, c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y)
		}
	}
	return sb.String()
}

func packValues(sb *strings.Builder, decimals int, vs ...float64) {
	for i, v := range vs {
		if v >= 0 && i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatCoord(v, decimals))
	}
}

// formatCoord prints integers without a fraction and other values with a
// fixed number of decimals. Negative zero prints as "0".
func formatCoord(v float64, decimals int) string {
	if r := math.Round(v); r == v {
		if r == 0 {
			return "0"
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
