package block

import (
	"context"
	"errors"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/render"
	"github.com/gogpu/glyphtrace/reveal"
	"github.com/gogpu/glyphtrace/text"
)

// layout is the settled content of a block.
type layout struct {
	units    []Unit
	timeline reveal.Timeline

	// reason is why some or all units render as fallback text.
	reason error
}

// build loads the font when the mode needs one and lays s out. Font and
// layout failures select the fallback and end up in the reason; the
// returned error is set only when loading was cancelled.
func (b *Block) build(ctx context.Context, env Env, s string) (layout, error) {
	mode := b.Mode()
	if mode == reveal.ModeParagraph {
		tl := reveal.ParagraphTimeline(b.cfg.baseDelay)
		return layout{units: []Unit{{Timing: tl.Units[0]}}, timeline: tl}, nil
	}

	var (
		h      *text.Handle
		reason error
	)
	if env.Loader == nil {
		reason = text.ErrNoFont
	} else {
		h, reason = env.Loader.Load(ctx, b.cfg.fontURL, b.cfg.weight)
		if err := ctx.Err(); err != nil {
			return layout{}, err
		}
		if errors.Is(reason, text.ErrLoaderClosed) {
			return layout{}, reason
		}
	}

	if mode == reveal.ModeHeadingTrace {
		return b.buildHeading(env, h, s, reason)
	}
	return b.buildWords(env, h, s, reason)
}

func (b *Block) buildHeading(env Env, h *text.Handle, s string, reason error) (layout, error) {
	tl := reveal.HeadingTimeline()
	if h != nil {
		res, err := text.Layout(h, s, b.cfg.size, b.cfg.lineGap)
		if err == nil {
			return layout{
				units:    []Unit{{Mode: render.NewOutline(res.Path, res.BBox), Timing: tl.Units[0]}},
				timeline: tl,
			}, nil
		}
		reason = err
	}
	glyphtrace.Logger().Warn("block: heading falls back to plain text", "text", s, "reason", reason)
	fb, err := render.NewFallback(s, b.cfg.size, b.cfg.weight, b.cfg.lineGap, env.Measurer)
	if err != nil {
		return layout{}, err
	}
	return layout{units: []Unit{{Mode: fb, Timing: tl.Units[0]}}, timeline: tl, reason: reason}, nil
}

func (b *Block) buildWords(env Env, h *text.Handle, s string, reason error) (layout, error) {
	var tokens []text.TokenLayout
	if h != nil {
		var err error
		if tokens, err = text.LayoutTokens(h, s, b.cfg.size); err != nil {
			reason = err
			tokens = nil
		}
	}
	if tokens == nil {
		for i, tok := range text.Tokenize(s) {
			tokens = append(tokens, text.TokenLayout{Token: tok, Index: i})
		}
	}

	units := make([]Unit, len(tokens))
	var words []int
	fallbacks := 0
	for n, tok := range tokens {
		units[n].Token = tok.Token
		if tok.Token.Space {
			continue
		}
		units[n].Timing = reveal.WordUnit(tok.Index, b.cfg.baseDelay, b.cfg.stagger)
		words = append(words, tok.Index)
		if h != nil && !tok.Empty() {
			units[n].Mode = render.NewOutline(tok.Path, tok.BBox)
			continue
		}
		fb, err := render.NewFallback(tok.Token.Text, b.cfg.size, b.cfg.weight, 0, env.Measurer)
		if err != nil {
			return layout{}, err
		}
		units[n].Mode = fb
		fallbacks++
	}
	if fallbacks > 0 {
		if reason == nil {
			reason = text.ErrEmptyGlyphPath
		}
		glyphtrace.Logger().Warn("block: words fall back to plain text",
			"words", len(words), "fallbacks", fallbacks, "reason", reason)
	}
	return layout{
		units:    units,
		timeline: reveal.WordTimeline(words, b.cfg.baseDelay, b.cfg.stagger),
		reason:   reason,
	}, nil
}
