// Package block assembles a text block: font loading, layout, the reveal
// scheduler and rendering.
//
// A heading is traced as a whole. A paragraph is either traced word by
// word (WithOutline) or faded in as plain text. When the font cannot be
// loaded, or yields no outline, the block falls back to plain text drawn
// with the same timeline.
//
//	loader := text.NewLoader(text.WithBasePath("/"))
//	defer loader.Close()
//	env := block.Env{Loader: loader, Observer: viewport}
//
//	h := block.NewHeading("Initial Brief")
//	defer h.Close()
//	if err := h.Mount(ctx, env, target); err != nil {
//		return err
//	}
package block
