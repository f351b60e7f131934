// Package render turns laid-out text into SVG markup and raster previews.
//
// A unit renders in one of two modes. VectorOutline draws glyph outlines
// with an animated stroke followed by the fill. FallbackText is used when
// the font could not be loaded or produced no outline: the text is drawn
// with a system serif and animated with the same timeline, so both modes
// take the same time to reveal.
package render
