package manifest

import (
	"errors"
	"html/template"
	"io"
	"strings"

	"github.com/gogpu/glyphtrace"
)

var assetTemplate = template.Must(template.New("asset").Parse(
	`{{define "missing"}}<div class="asset asset-missing">Missing asset: {{.}}</div>{{end}}` +
		`<figure class="asset asset-{{.Type}}"{{if .HasRatio}} style="aspect-ratio: {{.Ratio}}"{{end}} aria-label="{{.Alt}}">` +
		`{{if .IsVideo}}<video class="asset-media fit-{{.Fit}}" src="{{.Src}}" muted loop playsinline autoplay preload="metadata"></video>` +
		`{{else}}<img class="asset-media fit-{{.Fit}}" src="{{.Src}}" alt="{{.Alt}}" loading="lazy">{{end}}` +
		`{{with .Label}}<figcaption class="asset-label">{{.}}</figcaption>{{end}}</figure>`,
))

type assetView struct {
	Type     Type
	Src      string
	Alt      string
	Label    string
	Fit      string
	Ratio    template.CSS
	HasRatio bool
	IsVideo  bool
}

// WriteHTML writes the asset for id. A missing id renders a visible
// placeholder instead of failing; only write errors are returned.
func (m Manifest) WriteHTML(w io.Writer, id string) error {
	a, err := m.Lookup(id)
	if err != nil {
		var missing *AssetMissingError
		if errors.As(err, &missing) {
			glyphtrace.Logger().Warn("manifest: missing asset", "id", id)
			return assetTemplate.ExecuteTemplate(w, "missing", id)
		}
		return err
	}
	ratio, hasRatio := a.AspectRatio()
	if hasRatio && !validRatio(ratio) {
		glyphtrace.Logger().Warn("manifest: invalid ratio, using default", "id", id, "ratio", a.Ratio)
		ratio = DefaultRatio
	}
	typ := a.Type
	if typ != TypeVideo {
		typ = TypeImage
	}
	return assetTemplate.Execute(w, assetView{
		Type:     typ,
		Src:      a.Src,
		Alt:      a.AltText(id),
		Label:    a.Label,
		Fit:      a.ObjectFit(),
		Ratio:    template.CSS(ratio),
		HasRatio: hasRatio,
		IsVideo:  typ == TypeVideo,
	})
}

// validRatio accepts CSS ratios such as "16/9", "9 / 16" or "1.5".
func validRatio(r string) bool {
	if strings.TrimSpace(r) == "" {
		return false
	}
	for _, c := range r {
		if (c < '0' || c > '9') && c != '.' && c != '/' && c != ' ' {
			return false
		}
	}
	return true
}
