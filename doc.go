// Package glyphtrace renders text as hand-traced vector outlines that
// reveal themselves once when scrolled into view.
//
// # Overview
//
// A heading or paragraph is laid out from the glyph outlines of a
// (variable-weight) font, serialized as SVG path data and animated in two
// phases: the outline stroke draws itself, then the interior fills in. When
// the font cannot be loaded, or a glyph has no outline, the same timing is
// replayed over natively rendered text.
//
// # Architecture
//
// The module is organized into:
//   - text: font fetching, parsing, caching, tokenizing and outline layout
//   - reveal: the one-shot visibility state machine, viewport signal and
//     animation timelines
//   - render: render modes, fallback measurement, SVG output and raster
//     previews
//   - block: the per-instance text block tying the above together
//   - manifest, page: asset lookup and static case-study page output
//
// # Logging
//
// Nothing is logged by default. Use [SetLogger] to route diagnostics to a
// [log/slog] handler.
package glyphtrace
