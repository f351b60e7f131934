// Package geom provides the small 2D geometry kernel shared by layout,
// timing and rasterization: points, rectangles, Bézier segments and
// polynomial root solvers.
//
// Curve code follows kurbo (https://github.com/linebender/kurbo) patterns,
// adapted for Go idioms.
package geom
