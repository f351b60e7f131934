// Command casestudy renders a case-study page description and an asset
// manifest into a static HTML page with scroll-triggered text reveals.
//
//	casestudy -page content/mschf.json -manifest data/assets.json -public public -out public/mschf.html
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/block"
	"github.com/gogpu/glyphtrace/manifest"
	"github.com/gogpu/glyphtrace/page"
	"github.com/gogpu/glyphtrace/text"
)

func main() {
	var (
		pagePath     = flag.String("page", "page.json", "page description (JSON)")
		manifestPath = flag.String("manifest", "assets.json", "asset manifest (JSON)")
		public       = flag.String("public", ".", "directory serving fonts and local paths")
		base         = flag.String("base", "", "deployment base path for the default font")
		output       = flag.String("out", "index.html", "output file")
		concurrency  = flag.Int("concurrency", 8, "blocks laid out at once")
		autoplay     = flag.Bool("autoplay", false, "play reveals on load instead of on scroll")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glyphtrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		doc    *page.Document
		assets manifest.Manifest
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		data, err := os.ReadFile(*pagePath)
		if err != nil {
			return err
		}
		doc, err = page.Parse(data)
		return err
	})
	g.Go(func() error {
		data, err := os.ReadFile(*manifestPath)
		if err != nil {
			return err
		}
		assets, err = manifest.Parse(data)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to load inputs: %v", err)
	}

	loader := text.NewLoader(
		text.WithBasePath(*base),
		text.WithFetcher(text.NewSchemeFetcher(nil, text.DirFetcher(*public))),
	)
	defer loader.Close()

	f, err := os.Create(*output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}

	env := block.Env{Loader: loader}
	opts := page.Options{Concurrency: *concurrency, Autoplay: *autoplay}
	if err := page.Render(ctx, f, doc, assets, env, opts); err != nil {
		f.Close()
		log.Fatalf("Failed to render: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Page saved to %s", *output)
}
