package text

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

// countingFetcher serves goregular and counts fetches.
type countingFetcher struct {
	calls   atomic.Int32
	release chan struct{} // when non-nil, fetches block until closed
	fail    atomic.Bool
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.fail.Load() {
		return nil, errors.New("boom")
	}
	return goregular.TTF, nil
}

func TestLoaderLoad(t *testing.T) {
	f := &countingFetcher{}
	l := NewLoader(WithFetcher(f))
	defer l.Close()

	h, err := l.Load(context.Background(), "fonts/go.ttf", 700)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h.URL() != "fonts/go.ttf" || h.Weight() != 700 {
		t.Errorf("handle = (%q, %v), want (fonts/go.ttf, 700)", h.URL(), h.Weight())
	}

	again, err := l.Load(context.Background(), "fonts/go.ttf", 700)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if again != h {
		t.Error("second Load returned a different handle")
	}

	// Another weight reuses the parsed font.
	if _, err := l.Load(context.Background(), "fonts/go.ttf", 400); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := f.calls.Load(); n != 1 {
		t.Errorf("fetch count = %d, want 1", n)
	}
}

func TestLoaderDefaultURL(t *testing.T) {
	tests := []struct {
		base, url, want string
	}{
		{"", "", DefaultFontPath},
		{"/", "", "/" + DefaultFontPath},
		{"/portfolio/", "", "/portfolio/" + DefaultFontPath},
		{"/portfolio", "", "/portfolio/" + DefaultFontPath},
		{"/portfolio/", "https://cdn.example.com/a.ttf", "https://cdn.example.com/a.ttf"},
	}
	for _, tt := range tests {
		l := NewLoader(WithBasePath(tt.base))
		if got := l.Resolve(tt.url); got != tt.want {
			t.Errorf("Resolve(%q) with base %q = %q, want %q", tt.url, tt.base, got, tt.want)
		}
		l.Close()
	}
}

func TestLoaderSharesInFlightFetch(t *testing.T) {
	f := &countingFetcher{release: make(chan struct{})}
	l := NewLoader(WithFetcher(f))
	defer l.Close()

	const n = 8
	var wg sync.WaitGroup
	handles := make([]*Handle, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := l.Load(context.Background(), "", 700)
			if err != nil {
				t.Errorf("Load: %v", err)
			}
			handles[i] = h
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(f.release)
	wg.Wait()

	if got := f.calls.Load(); got != 1 {
		t.Errorf("fetch count = %d, want 1", got)
	}
	for i := 1; i < n; i++ {
		if handles[i] != handles[0] {
			t.Fatal("concurrent loads returned different handles")
		}
	}
}

func TestLoaderFailureNotCached(t *testing.T) {
	f := &countingFetcher{}
	f.fail.Store(true)
	l := NewLoader(WithFetcher(f))
	defer l.Close()

	_, err := l.Load(context.Background(), "missing.ttf", 400)
	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %v, want *FontLoadError", err)
	}
	if loadErr.URL != "missing.ttf" || loadErr.Weight != 400 {
		t.Errorf("FontLoadError = %+v", loadErr)
	}

	f.fail.Store(false)
	if _, err := l.Load(context.Background(), "missing.ttf", 400); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if got := f.calls.Load(); got != 2 {
		t.Errorf("fetch count = %d, want 2", got)
	}
}

func TestLoaderParseFailure(t *testing.T) {
	l := NewLoader(WithFetcher(FetcherFunc(func(context.Context, string) ([]byte, error) {
		return []byte("garbage"), nil
	})))
	defer l.Close()

	_, err := l.Load(context.Background(), "bad.ttf", 400)
	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("Load error = %v, want *FontLoadError", err)
	}
}

func TestLoaderCallerCancel(t *testing.T) {
	f := &countingFetcher{release: make(chan struct{})}
	l := NewLoader(WithFetcher(f))
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Load(ctx, "slow.ttf", 400)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}

	// The shared fetch keeps going for other callers.
	close(f.release)
	if _, err := l.Load(context.Background(), "slow.ttf", 400); err != nil {
		t.Errorf("Load after cancel: %v", err)
	}
}

func TestLoaderClose(t *testing.T) {
	f := &countingFetcher{release: make(chan struct{})}
	l := NewLoader(WithFetcher(f))

	p := l.LoadAsync(context.Background(), "slow.ttf", 400)
	select {
	case <-p.Done():
		t.Fatal("LoadAsync finished before the fetch was released")
	default:
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := p.Result(); err == nil {
		t.Error("pending load succeeded after Close")
	}
	if _, err := l.Load(context.Background(), "slow.ttf", 400); !errors.Is(err, ErrLoaderClosed) {
		t.Errorf("Load after Close error = %v, want ErrLoaderClosed", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestLoaderLoadAsync(t *testing.T) {
	l := NewLoader(WithFetcher(&countingFetcher{}))
	defer l.Close()

	p := l.LoadAsync(context.Background(), "", 700)
	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("LoadAsync did not finish")
	}
	h, err := p.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if h.URL() != DefaultFontPath {
		t.Errorf("URL() = %q, want %q", h.URL(), DefaultFontPath)
	}
}
