package text

import (
	"sync"

	"github.com/gogpu/glyphtrace"
)

// Handle is a parsed font ready for outline extraction, configured for one
// weight. Handles are produced by a Loader or by NewHandle and may be
// shared between any number of text blocks.
//
// Handle is safe for concurrent use.
type Handle struct {
	url      string
	weight   float64
	name     string
	parsed   ParsedFont
	weightOK bool

	mu   sync.Mutex
	inst Instance
}

// NewHandle parses font data (TTF or OTF) and configures it for weight.
//
// A font without a weight axis is not an error: the handle renders at the
// font's default weight and WeightApplied reports false.
func NewHandle(data []byte, weight float64, opts ...SourceOption) (*Handle, error) {
	return newHandle("", data, weight, opts...)
}

func newHandle(url string, data []byte, weight float64, opts ...SourceOption) (*Handle, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}
	return handleFor(url, parsed, weight), nil
}

// handleFor builds a Handle over an already parsed font.
func handleFor(url string, parsed ParsedFont, weight float64) *Handle {
	inst, ok := parsed.Instance(weight)
	if !ok {
		glyphtrace.Logger().Debug("text: weight axis not applied",
			"url", url, "font", parsed.Name(), "weight", weight)
	}
	return &Handle{
		url:      url,
		weight:   weight,
		name:     parsed.Name(),
		parsed:   parsed,
		weightOK: ok,
		inst:     inst,
	}
}

// URL returns the address the font was loaded from, or "" for handles
// created from bytes.
func (h *Handle) URL() string { return h.url }

// Weight returns the requested weight.
func (h *Handle) Weight() float64 { return h.weight }

// Name returns the font family name, or "" if not available.
func (h *Handle) Name() string { return h.name }

// WeightApplied reports whether the requested weight was set on the
// font's weight axis.
func (h *Handle) WeightApplied() bool { return h.weightOK }

// UnitsPerEm returns the font's design units per em.
func (h *Handle) UnitsPerEm() int { return h.parsed.UnitsPerEm() }

// use runs fn with exclusive access to the handle's font instance.
func (h *Handle) use(fn func(Instance)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.inst)
}
