// Command tracegen renders one text block as an animated outline reveal.
//
// It writes a standalone HTML document and, for headings, can rasterize a
// single frame of the reveal to PNG:
//
//	tracegen -text "Initial Brief" -font fonts/EBGaramond-VariableFont_wght.ttf -out brief.html
//	tracegen -text "Initial Brief" -png brief.png -at 800ms
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/block"
	"github.com/gogpu/glyphtrace/render"
	"github.com/gogpu/glyphtrace/reveal"
	"github.com/gogpu/glyphtrace/text"
)

func main() {
	var (
		input    = flag.String("text", "Initial Brief", "text to render; \\n separates heading lines")
		kind     = flag.String("kind", "heading", "block kind: heading or paragraph")
		outline  = flag.Bool("outline", false, "trace a paragraph word by word")
		size     = flag.Float64("size", 0, "font size in pixels (0 uses the block default)")
		weight   = flag.Float64("weight", 0, "font weight (0 uses the block default)")
		lineGap  = flag.Float64("linegap", 0.2, "heading line gap as a fraction of the size")
		fontURL  = flag.String("font", "", "font path or URL (empty uses the default font)")
		base     = flag.String("base", "", "base path the default font is resolved against")
		public   = flag.String("public", ".", "directory serving local font paths")
		output   = flag.String("out", "", "HTML output file (default stdout)")
		pngOut   = flag.String("png", "", "write one frame of a heading to this PNG file")
		at       = flag.Duration("at", 800*time.Millisecond, "time after the trigger of the PNG frame")
		scale    = flag.Float64("scale", 2, "PNG scale factor")
		autoplay = flag.Bool("autoplay", true, "play the reveal on load instead of on scroll")
		simulate = flag.Bool("simulate", false, "simulate scrolling the block into view and log the reveal")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glyphtrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := text.NewLoader(
		text.WithBasePath(*base),
		text.WithFetcher(text.NewSchemeFetcher(nil, text.DirFetcher(*public))),
	)
	defer loader.Close()
	env := block.Env{Loader: loader}

	opts := []block.Option{block.WithFontURL(*fontURL), block.WithLineGap(*lineGap)}
	if *size > 0 {
		opts = append(opts, block.WithSize(*size))
	}
	if *weight > 0 {
		opts = append(opts, block.WithWeight(*weight))
	}

	var b *block.Block
	switch *kind {
	case "heading":
		b = block.NewHeading(*input, opts...)
	case "paragraph":
		opts = append(opts, block.WithOutline(*outline))
		b = block.NewParagraph(*input, opts...)
	default:
		log.Fatalf("Unknown kind %q", *kind)
	}
	defer b.Close()

	if err := b.Load(ctx, env); err != nil {
		log.Fatalf("Failed to lay out: %v", err)
	}
	if reason := b.FallbackReason(); reason != nil {
		log.Printf("Rendering plain-text fallback: %v", reason)
	}

	if err := writeHTML(*output, b, *autoplay); err != nil {
		log.Fatalf("Failed to write HTML: %v", err)
	}
	if *pngOut != "" {
		if err := writePNG(*pngOut, b, *at, *scale); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
		log.Printf("Frame at %v saved to %s", *at, *pngOut)
	}
	if *simulate {
		simulateScroll(ctx, *input, *kind, opts, env)
	}
}

func writeHTML(path string, b *block.Block, autoplay bool) (err error) {
	var w io.Writer = os.Stdout
	if path != "" {
		var f *os.File
		f, err = os.Create(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if _, err := fmt.Fprintf(w, "<!doctype html>\n<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if err := render.WriteStyles(w); err != nil {
		return err
	}
	var opts []render.SVGOption
	if autoplay {
		opts = append(opts, render.WithAutoplay())
	}
	return b.WriteHTML(w, opts...)
}

func writePNG(path string, b *block.Block, at time.Duration, scale float64) error {
	units := b.Units()
	if len(units) != 1 {
		return errors.New("PNG frames are only rendered for headings")
	}
	o, ok := units[0].Mode.(render.VectorOutline)
	if !ok {
		return fmt.Errorf("block has no outline: %v", b.FallbackReason())
	}
	img := render.Rasterize(o, units[0].Timing.Sample(at), render.RasterOptions{
		Scale:      scale,
		Ink:        color.NRGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff},
		Background: color.White,
	})

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// simulateScroll mounts a fresh block below the fold of a 1280x800
// viewport and scrolls towards it in 100px steps of one frame each.
func simulateScroll(ctx context.Context, input, kind string, opts []block.Option, env block.Env) {
	clock := time.Unix(0, 0)
	now := func() time.Time { return clock }
	vp := reveal.NewViewport(1280, 800)
	vp.SetClock(now)
	env.Observer = vp
	env.Clock = now

	b := block.NewHeading(input, opts...)
	if kind == "paragraph" {
		b = block.NewParagraph(input, opts...)
	}
	defer b.Close()

	target := reveal.Rect{Y: 2000, Width: 1280, Height: 120}
	if err := b.Mount(ctx, env, target); err != nil {
		log.Fatalf("Failed to mount: %v", err)
	}
	<-b.Settled()

	const frame = 16 * time.Millisecond
	for y := 0.0; y <= 2000; y += 100 {
		clock = clock.Add(frame)
		vp.ScrollTo(y)
		if b.Scheduler().State() == reveal.Triggered {
			break
		}
	}
	start, ok := b.PlaybackStart()
	if !ok {
		log.Printf("Block never became visible")
		return
	}
	log.Printf("Triggered after %v of scrolling; reveal runs %v", start.Sub(time.Unix(0, 0)), b.Timeline().Duration())
	for t := time.Duration(0); t <= b.Timeline().Duration(); t += 200 * time.Millisecond {
		f := b.Frame(0, start.Add(t))
		log.Printf("  t=%-6v stroke=%.2f fill=%.2f opacity=%.2f", t, f.Stroke, f.Fill, f.Opacity)
	}
}
