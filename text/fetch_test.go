package text

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fonts/a.ttf":
			w.Write([]byte("font-bytes"))
		case "/fonts/big.ttf":
			w.Write(make([]byte, 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := &HTTPFetcher{Client: srv.Client(), MaxBytes: 32}

	data, err := f.Fetch(context.Background(), srv.URL+"/fonts/a.ttf")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "font-bytes" {
		t.Errorf("Fetch = %q", data)
	}

	_, err = f.Fetch(context.Background(), srv.URL+"/fonts/missing.ttf")
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("Fetch missing error = %v, want 404 HTTPStatusError", err)
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/fonts/big.ttf"); err == nil {
		t.Error("Fetch of oversized font succeeded")
	}
}

func TestFSFetcher(t *testing.T) {
	f := FSFetcher{FS: fstest.MapFS{
		"fonts/a.ttf": &fstest.MapFile{Data: []byte("abc")},
	}}
	for _, url := range []string{"fonts/a.ttf", "/fonts/a.ttf"} {
		data, err := f.Fetch(context.Background(), url)
		if err != nil {
			t.Fatalf("Fetch(%q): %v", url, err)
		}
		if string(data) != "abc" {
			t.Errorf("Fetch(%q) = %q", url, data)
		}
	}
	if _, err := f.Fetch(context.Background(), "nope.ttf"); err == nil {
		t.Error("Fetch of missing file succeeded")
	}
}

func TestSchemeFetcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "local.ttf"), []byte("local"), 0o600); err != nil {
		t.Fatal(err)
	}
	remote := FetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		return []byte("remote:" + url), nil
	})
	f := NewSchemeFetcher(remote, DirFetcher(dir))

	tests := []struct {
		url, want string
	}{
		{"local.ttf", "local"},
		{"/local.ttf", "local"},
		{"https://example.com/x.ttf", "remote:https://example.com/x.ttf"},
		{"http://example.com/y.ttf", "remote:http://example.com/y.ttf"},
	}
	for _, tt := range tests {
		got, err := f.Fetch(context.Background(), tt.url)
		if err != nil {
			t.Fatalf("Fetch(%q): %v", tt.url, err)
		}
		if string(got) != tt.want {
			t.Errorf("Fetch(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
