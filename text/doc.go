// Package text loads outline fonts and lays text out as vector paths.
//
// The pipeline follows a separation of concerns:
//
//   - Loader: session-scoped, fetches and parses fonts once per (url, weight)
//   - Handle: immutable parsed font at a weight axis value
//   - FontParser: pluggable parsing backend (default: go-text/typesetting)
//   - Layout / LayoutTokens: per-line or per-token outlines and bounding boxes
//
// # Example usage
//
//	loader := text.NewLoader(text.WithBasePath("/"), text.WithFetcher(text.DirFetcher("public")))
//	defer loader.Close()
//
//	h, err := loader.Load(ctx, "", 700) // default EB Garamond variable font
//	if err != nil {
//	    // render the fallback instead
//	}
//
//	res, err := text.Layout(h, "Initial Brief", 56, 0.2)
//	fmt.Println(res.PathData, res.BBox)
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface. Two backends
// are registered: "gotext" (github.com/go-text/typesetting, the default,
// supports variable axes and HarfBuzz shaping) and "ximage"
// (golang.org/x/image/font/sfnt, static fonts with kern-table kerning).
//
//	h, err := text.NewHandle(data, 400, text.WithParser(text.ParserXImage))
package text
