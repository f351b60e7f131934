package text

import (
	"context"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/glyphtrace"
)

// Loader fetches and parses fonts on demand and shares the results.
//
// Concurrent requests for the same URL and weight result in one fetch;
// different weights of one URL share the parsed font. Successful loads are
// cached, failures are not, so a later request retries.
//
// Loader is safe for concurrent use.
type Loader struct {
	config loaderConfig

	session context.Context
	cancel  context.CancelFunc
	closed  atomic.Bool

	handles *Cache[FontKey, *Handle]
	fonts   *Cache[string, ParsedFont]
	group   singleflight.Group
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	config := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&config)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		config:  config,
		session: ctx,
		cancel:  cancel,
		handles: NewCache[FontKey, *Handle](config.cacheLimit),
		fonts:   NewCache[string, ParsedFont](config.cacheLimit),
	}
}

// Resolve returns the URL the loader fetches for url.
func (l *Loader) Resolve(url string) string {
	return ResolveFontURL(l.config.basePath, url)
}

// Load returns a handle for the font at url configured for weight. An
// empty url loads the default font.
//
// Cancelling ctx abandons the wait without affecting other callers waiting
// for the same font. Errors other than ErrLoaderClosed are reported as
// *FontLoadError.
func (l *Loader) Load(ctx context.Context, url string, weight float64) (*Handle, error) {
	if l.closed.Load() {
		return nil, ErrLoaderClosed
	}
	key := FontKey{URL: l.Resolve(url), Weight: weight}
	if h, ok := l.handles.Get(key); ok {
		return h, nil
	}

	ch := l.group.DoChan(flightKey(key), func() (any, error) {
		return l.load(key)
	})
	select {
	case <-ctx.Done():
		return nil, &FontLoadError{URL: key.URL, Weight: weight, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			if l.closed.Load() {
				return nil, ErrLoaderClosed
			}
			glyphtrace.Logger().Warn("text: font load failed",
				"url", key.URL, "weight", weight, "err", res.Err)
			return nil, &FontLoadError{URL: key.URL, Weight: weight, Err: res.Err}
		}
		return res.Val.(*Handle), nil
	}
}

func (l *Loader) load(key FontKey) (*Handle, error) {
	parsed, err := l.parsedFont(key.URL)
	if err != nil {
		return nil, err
	}
	h := handleFor(key.URL, parsed, key.Weight)
	if !l.closed.Load() {
		l.handles.Set(key, h)
	}
	glyphtrace.Logger().Debug("text: font loaded",
		"url", key.URL, "weight", key.Weight, "font", h.Name())
	return h, nil
}

func (l *Loader) parsedFont(url string) (ParsedFont, error) {
	if p, ok := l.fonts.Get(url); ok {
		return p, nil
	}
	v, err, _ := l.group.Do("font\x00"+url, func() (any, error) {
		data, err := l.config.fetcher.Fetch(l.session, url)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, ErrEmptyFontData
		}
		p, err := getParser(l.config.parserName).Parse(data)
		if err != nil {
			return nil, err
		}
		if !l.closed.Load() {
			l.fonts.Set(url, p)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(ParsedFont), nil
}

func flightKey(k FontKey) string {
	return "handle\x00" + k.URL + "\x00" + strconv.FormatFloat(k.Weight, 'g', -1, 64)
}

// LoadAsync starts loading in the background and returns immediately.
// The wait ends when the load completes, ctx is cancelled or the loader is
// closed.
func (l *Loader) LoadAsync(ctx context.Context, url string, weight float64) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(l.session, cancel)
		defer stop()
		p.handle, p.err = l.Load(ctx, url, weight)
	}()
	return p
}

// Close cancels in-flight fetches and drops all cached fonts. Handles
// already returned stay usable.
func (l *Loader) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	l.cancel()
	l.handles.Clear()
	l.fonts.Clear()
	return nil
}

// Pending is the result of an asynchronous load.
type Pending struct {
	done   chan struct{}
	handle *Handle
	err    error
}

// Done is closed when the load has finished.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Result waits for the load to finish and returns its outcome.
func (p *Pending) Result() (*Handle, error) {
	<-p.done
	return p.handle, p.err
}
