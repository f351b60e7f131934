package block

import (
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/gogpu/glyphtrace/render"
	"github.com/gogpu/glyphtrace/reveal"
)

// WriteHTML writes the settled block as an HTML fragment. The container
// carries the block's threshold and root margin for the page script, which
// adds render.RevealedClass once the block is visible.
func (b *Block) WriteHTML(w io.Writer, opts ...render.SVGOption) error {
	select {
	case <-b.settled:
	default:
		return ErrNotSettled
	}
	mode := b.Mode()
	b.mu.Lock()
	s, units := b.text, b.units
	b.mu.Unlock()

	_, err := fmt.Fprintf(w, `<div class="gt-block gt-%s" data-gt-threshold="%s" data-gt-margin="%s">`,
		mode, strconv.FormatFloat(mode.Threshold(), 'g', -1, 64), reveal.DefaultRootMargin.CSS())
	if err != nil {
		return err
	}

	switch mode {
	case reveal.ModeHeadingTrace:
		if _, err := io.WriteString(w, `<h2 class="gt-heading">`); err != nil {
			return err
		}
		u := units[0]
		if err := render.WriteUnit(w, u.Mode, u.Timing, append(opts[:len(opts):len(opts)], render.WithLabel(s))...); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</h2>`); err != nil {
			return err
		}
	case reveal.ModeWordTrace:
		if _, err := fmt.Fprintf(w, `<p class="gt-words" aria-label="%s">`, html.EscapeString(s)); err != nil {
			return err
		}
		for _, u := range units {
			if u.Mode == nil {
				if err := render.WriteSpace(w, u.Token.Text); err != nil {
					return err
				}
				continue
			}
			if err := render.WriteUnit(w, u.Mode, u.Timing, opts...); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</p>`); err != nil {
			return err
		}
	default:
		if err := render.WriteParagraph(w, s, units[0].Timing, opts...); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</div>\n")
	return err
}
