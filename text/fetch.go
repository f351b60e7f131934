package text

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// DefaultFontPath is the font used when a block does not name one,
// relative to the deployment base path.
const DefaultFontPath = "fonts/EBGaramond-VariableFont_wght.ttf"

// defaultMaxFontBytes caps the size of a fetched font.
const defaultMaxFontBytes = 32 << 20

// Fetcher retrieves raw font bytes for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// HTTPFetcher fetches fonts over HTTP(S).
type HTTPFetcher struct {
	// Client is the HTTP client to use. nil means http.DefaultClient.
	Client *http.Client

	// MaxBytes limits the response body size. 0 means 32 MiB.
	MaxBytes int64
}

// Fetch issues a GET request for url. Non-2xx responses are reported as
// *HTTPStatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}
	limit := f.MaxBytes
	if limit <= 0 {
		limit = defaultMaxFontBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("text: fetch %q: font larger than %d bytes", url, limit)
	}
	return data, nil
}

// FSFetcher reads fonts from a file system. Leading slashes in the URL are
// stripped so site-absolute paths map onto the file system root.
type FSFetcher struct {
	FS fs.FS
}

// Fetch reads the named file.
func (f FSFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimLeft(url, "/")
	if name == "" {
		name = "."
	}
	return fs.ReadFile(f.FS, name)
}

// DirFetcher returns a Fetcher that serves fonts from the directory dir,
// the way a static site serves its public folder.
func DirFetcher(dir string) Fetcher {
	return FSFetcher{FS: os.DirFS(dir)}
}

// SchemeFetcher dispatches http:// and https:// URLs to one fetcher and
// everything else to another.
type SchemeFetcher struct {
	HTTP  Fetcher
	Local Fetcher
}

// NewSchemeFetcher returns a SchemeFetcher. A nil httpF uses HTTPFetcher,
// a nil local reads from the current working directory.
func NewSchemeFetcher(httpF, local Fetcher) *SchemeFetcher {
	if httpF == nil {
		httpF = &HTTPFetcher{}
	}
	if local == nil {
		local = DirFetcher(".")
	}
	return &SchemeFetcher{HTTP: httpF, Local: local}
}

// Fetch routes url by scheme.
func (f *SchemeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return f.HTTP.Fetch(ctx, url)
	}
	return f.Local.Fetch(ctx, url)
}

// ResolveFontURL returns url, or DefaultFontPath joined to base when url is
// empty.
func ResolveFontURL(base, url string) string {
	if url != "" {
		return url
	}
	if base == "" {
		return DefaultFontPath
	}
	return strings.TrimSuffix(base, "/") + "/" + DefaultFontPath
}
