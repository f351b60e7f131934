package block

import "time"

// Option configures a Block.
type Option func(*config)

type config struct {
	size      float64
	weight    float64
	lineGap   float64
	fontURL   string
	baseDelay time.Duration
	stagger   time.Duration
	outline   bool
}

func defaultHeadingConfig() config {
	return config{
		size:    56,
		weight:  700,
		lineGap: 0.2,
		outline: true,
	}
}

func defaultParagraphConfig() config {
	return config{
		size:    18,
		weight:  400,
		stagger: 20 * time.Millisecond,
	}
}

// WithSize sets the font size in pixels.
func WithSize(px float64) Option {
	return func(c *config) {
		if px > 0 {
			c.size = px
		}
	}
}

// WithWeight sets the requested font weight.
func WithWeight(w float64) Option {
	return func(c *config) { c.weight = w }
}

// WithLineGap sets the gap between heading lines as a fraction of the
// size.
func WithLineGap(ratio float64) Option {
	return func(c *config) { c.lineGap = ratio }
}

// WithFontURL sets the font to load. The default font is used when url is
// empty.
func WithFontURL(url string) Option {
	return func(c *config) { c.fontURL = url }
}

// WithBaseDelay delays the start of a paragraph's reveal.
func WithBaseDelay(d time.Duration) Option {
	return func(c *config) { c.baseDelay = d }
}

// WithStagger sets the delay between consecutive tokens of a traced
// paragraph.
func WithStagger(d time.Duration) Option {
	return func(c *config) { c.stagger = d }
}

// WithOutline traces a paragraph word by word instead of fading it in.
func WithOutline(on bool) Option {
	return func(c *config) { c.outline = on }
}
