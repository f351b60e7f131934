package page

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/block"
	"github.com/gogpu/glyphtrace/manifest"
	"github.com/gogpu/glyphtrace/render"
)

// Options configures Render.
type Options struct {
	// Concurrency limits how many blocks are laid out at once. 0 means 8.
	Concurrency int

	// Autoplay plays every reveal on load instead of on scroll.
	Autoplay bool
}

// revealScript adds the revealed class to each block once, the first time
// it is visible beyond its threshold.
const revealScript = `(function () {
  var blocks = document.querySelectorAll('.gt-block');
  if (!('IntersectionObserver' in window)) {
    blocks.forEach(function (el) { el.classList.add('is-revealed'); });
    return;
  }
  blocks.forEach(function (el) {
    var t = parseFloat(el.dataset.gtThreshold) || 0;
    var o = new IntersectionObserver(function (entries) {
      entries.forEach(function (e) {
        if (e.isIntersecting && e.intersectionRatio >= t) {
          el.classList.add('is-revealed');
          o.disconnect();
        }
      });
    }, { threshold: t, rootMargin: el.dataset.gtMargin || '0px' });
    o.observe(el);
  });
})();`

const pageCSS = `body{margin:0 auto;max-width:960px;padding:4rem 1.5rem;font-family:'EB Garamond',serif;color:#18181b}
.gt-heading{margin:3rem 0 1rem;font-weight:700}
.gt-words,.gt-para{font-size:18px;line-height:1.5}
.gt-space{display:inline-block;white-space:pre}
.asset{position:relative;width:100%;margin:1.5rem 0}
.asset[style] .asset-media{position:absolute;inset:0;width:100%;height:100%}
.asset-media{width:100%;height:auto;display:block}
.fit-cover{object-fit:cover}.fit-contain{object-fit:contain}
.asset-label{position:absolute;left:.5rem;bottom:.5rem;font-size:10px;padding:.125rem .375rem;background:rgba(255,255,255,.8);border-radius:2px}
.asset-missing{background:#f4f4f5;color:#71717a;font-size:12px;padding:.5rem}
`

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.Styles}}</style>
</head>
<body>
{{range .Sections}}<section{{with .ID}} id="{{.}}"{{end}}>
{{range .Items}}{{.}}
{{end}}</section>
{{end}}<script>{{.Script}}</script>
</body>
</html>
`))

type pageView struct {
	Title    string
	Lang     string
	Styles   template.CSS
	Script   template.JS
	Sections []sectionView
}

type sectionView struct {
	ID    string
	Items []template.HTML
}

// Render lays out every text block concurrently and writes the page to w.
// Blocks whose font fails render as plain text; missing assets render as
// placeholders. Only cancellation and write errors are returned.
func Render(ctx context.Context, w io.Writer, doc *Document, m manifest.Manifest, env block.Env, opts Options) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 8
	}

	blocks := make([][]*block.Block, len(doc.Sections))
	for si, s := range doc.Sections {
		blocks[si] = make([]*block.Block, len(s.Items))
		for ii, it := range s.Items {
			blocks[si][ii] = newBlock(it)
		}
	}
	defer func() {
		for _, row := range blocks {
			for _, b := range row {
				if b != nil {
					b.Close()
				}
			}
		}
	}()

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, row := range blocks {
		for _, b := range row {
			if b == nil {
				continue
			}
			g.Go(func() error {
				return b.Load(gctx, env)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	glyphtrace.Logger().Info("page: blocks laid out", "title", doc.Title, "elapsed", time.Since(start))

	var svgOpts []render.SVGOption
	if opts.Autoplay {
		svgOpts = append(svgOpts, render.WithAutoplay())
	}

	view := pageView{
		Title:  doc.Title,
		Lang:   doc.Lang,
		Styles: template.CSS(render.Stylesheet + pageCSS),
		Script: template.JS(revealScript),
	}
	if view.Lang == "" {
		view.Lang = "en"
	}
	for si, s := range doc.Sections {
		sv := sectionView{ID: s.ID}
		for ii, it := range s.Items {
			var buf bytes.Buffer
			var err error
			if b := blocks[si][ii]; b != nil {
				err = b.WriteHTML(&buf, svgOpts...)
				if reason := b.FallbackReason(); reason != nil {
					glyphtrace.Logger().Warn("page: block rendered as plain text", "text", it.Text, "reason", reason)
				}
			} else {
				err = m.WriteHTML(&buf, it.Asset)
			}
			if err != nil {
				return err
			}
			sv.Items = append(sv.Items, template.HTML(buf.String())) //nolint:gosec // writers escape their content
		}
		view.Sections = append(view.Sections, sv)
	}
	return pageTemplate.Execute(w, view)
}

func newBlock(it Item) *block.Block {
	var opts []block.Option
	if it.Size > 0 {
		opts = append(opts, block.WithSize(it.Size))
	}
	if it.Weight > 0 {
		opts = append(opts, block.WithWeight(it.Weight))
	}
	if it.LineGap != nil {
		opts = append(opts, block.WithLineGap(*it.LineGap))
	}
	if it.Font != "" {
		opts = append(opts, block.WithFontURL(it.Font))
	}
	switch it.Kind {
	case KindHeading:
		return block.NewHeading(it.Text, opts...)
	case KindParagraph:
		opts = append(opts, block.WithOutline(it.Outline), block.WithBaseDelay(it.Delay()))
		return block.NewParagraph(it.Text, opts...)
	default:
		return nil
	}
}
