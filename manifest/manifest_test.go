package manifest

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const testManifest = `{
  "hero": {"type": "image", "src": "/img/hero.jpg", "label": "Hero shot"},
  "wide": {"type": "image", "src": "/img/wide.jpg", "ratio": "16:9", "fit": "contain"},
  "clip": {"type": "video", "src": "/vid/clip.mp4", "ratio": "auto"},
  "evil": {"type": "image", "src": "/img/x.jpg", "ratio": "1;background:url(x)"}
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(testManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 4 {
		t.Fatalf("got %d assets, want 4", len(m))
	}

	for _, bad := range []string{"", "[]", "null", `{"a": 1}`} {
		if _, err := Parse([]byte(bad)); !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidManifest", bad, err)
		}
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"data/assets.json": &fstest.MapFile{Data: []byte(testManifest)}}
	m, err := Load(fsys, "data/assets.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := m.Lookup("clip"); err != nil {
		t.Errorf("Lookup(clip): %v", err)
	}
	if _, err := Load(fsys, "missing.json"); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestAssetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		asset    Asset
		ratio    string
		hasRatio bool
		fit      string
	}{
		{"defaults", Asset{}, "9/16", true, "cover"},
		{"colon ratio", Asset{Ratio: "16:9", Fit: "contain"}, "16 / 9", true, "contain"},
		{"auto", Asset{Ratio: "auto", Fit: "fill"}, "", false, "cover"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio, ok := tt.asset.AspectRatio()
			if ratio != tt.ratio || ok != tt.hasRatio {
				t.Errorf("AspectRatio() = %q, %v; want %q, %v", ratio, ok, tt.ratio, tt.hasRatio)
			}
			if got := tt.asset.ObjectFit(); got != tt.fit {
				t.Errorf("ObjectFit() = %q, want %q", got, tt.fit)
			}
		})
	}
}

func TestLookupMissing(t *testing.T) {
	_, err := Manifest{}.Lookup("nope")
	var missing *AssetMissingError
	if !errors.As(err, &missing) || missing.ID != "nope" {
		t.Errorf("Lookup error = %v, want AssetMissingError{nope}", err)
	}
}

func TestWriteHTML(t *testing.T) {
	m, err := Parse([]byte(testManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tests := []struct {
		id      string
		want    []string
		notWant []string
	}{
		{
			id:   "hero",
			want: []string{`<img`, `src="/img/hero.jpg"`, `alt="Hero shot"`, `aspect-ratio: 9/16`, `fit-cover`, `<figcaption class="asset-label">Hero shot</figcaption>`},
		},
		{
			id:      "wide",
			want:    []string{`aspect-ratio: 16 / 9`, `fit-contain`, `alt="wide"`},
			notWant: []string{"figcaption"},
		},
		{
			id:      "clip",
			want:    []string{`<video`, `src="/vid/clip.mp4"`},
			notWant: []string{"aspect-ratio"},
		},
		{
			id:      "evil",
			want:    []string{`aspect-ratio: 9/16`},
			notWant: []string{"url("},
		},
		{
			id:   "<gone>",
			want: []string{"Missing asset: &lt;gone&gt;"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			var sb strings.Builder
			if err := m.WriteHTML(&sb, tt.id); err != nil {
				t.Fatalf("WriteHTML: %v", err)
			}
			out := sb.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %s:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output contains %s:\n%s", w, out)
				}
			}
		})
	}
}
