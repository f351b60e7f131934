// Package manifest maps asset ids to images and videos and renders them
// as HTML.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/gogpu/glyphtrace"
)

// Type is the media type of an asset.
type Type string

// Asset types.
const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// Defaults applied to assets that leave the field out.
const (
	DefaultRatio = "9/16"
	DefaultFit   = "cover"

	// RatioAuto disables the aspect ratio wrapper.
	RatioAuto = "auto"
)

// ErrInvalidManifest is returned for manifests that do not decode to an
// id → asset object.
var ErrInvalidManifest = errors.New("manifest: invalid manifest")

// AssetMissingError is returned when an id is not in the manifest.
type AssetMissingError struct {
	ID string
}

func (e *AssetMissingError) Error() string {
	return "manifest: missing asset " + e.ID
}

// Asset is one manifest entry.
type Asset struct {
	Type  Type   `json:"type"`
	Src   string `json:"src"`
	Label string `json:"label,omitempty"`
	Ratio string `json:"ratio,omitempty"`
	Fit   string `json:"fit,omitempty"`
}

// AspectRatio returns the CSS aspect-ratio value, or ok == false when the
// asset keeps its natural size. "9:16" is written as "9 / 16".
func (a Asset) AspectRatio() (ratio string, ok bool) {
	r := a.Ratio
	if r == "" {
		r = DefaultRatio
	}
	if r == RatioAuto {
		return "", false
	}
	return strings.Replace(r, ":", " / ", 1), true
}

// ObjectFit returns "contain" or "cover".
func (a Asset) ObjectFit() string {
	if a.Fit == "contain" {
		return "contain"
	}
	return DefaultFit
}

// AltText returns the label, or id when the asset has none.
func (a Asset) AltText(id string) string {
	if a.Label != "" {
		return a.Label
	}
	return id
}

// Manifest maps asset ids to assets.
type Manifest map[string]Asset

// Parse decodes a JSON manifest.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if m == nil {
		return nil, ErrInvalidManifest
	}
	for id, a := range m {
		if a.Type != TypeImage && a.Type != TypeVideo {
			glyphtrace.Logger().Warn("manifest: unknown asset type, rendering as image",
				"id", id, "type", a.Type)
		}
	}
	return m, nil
}

// Load reads and parses the manifest at name in fsys.
func Load(fsys fs.FS, name string) (Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", name, err)
	}
	return Parse(data)
}

// Lookup returns the asset for id.
func (m Manifest) Lookup(id string) (Asset, error) {
	a, ok := m[id]
	if !ok {
		return Asset{}, &AssetMissingError{ID: id}
	}
	return a, nil
}
