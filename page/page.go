// Package page renders a case-study document of headings, paragraphs and
// assets into a static HTML page with one-shot reveal animations.
package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Item kinds.
const (
	KindHeading   = "heading"
	KindParagraph = "paragraph"
	KindAsset     = "asset"
)

// ErrInvalidDocument is returned for documents that fail validation.
var ErrInvalidDocument = errors.New("page: invalid document")

// Document is a page description.
type Document struct {
	Title    string    `json:"title"`
	Lang     string    `json:"lang,omitempty"`
	Sections []Section `json:"sections"`
}

// Section groups items under an optional anchor.
type Section struct {
	ID    string `json:"id,omitempty"`
	Items []Item `json:"items"`
}

// Item is a heading, a paragraph or an asset reference.
type Item struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`

	// Asset is the manifest id of an asset item.
	Asset string `json:"asset,omitempty"`

	// Outline traces a paragraph word by word.
	Outline bool `json:"outline,omitempty"`

	// BaseDelay delays a paragraph's reveal, in seconds.
	BaseDelay float64 `json:"baseDelay,omitempty"`

	Size    float64  `json:"size,omitempty"`
	Weight  float64  `json:"weight,omitempty"`
	LineGap *float64 `json:"lineGap,omitempty"`
	Font    string   `json:"font,omitempty"`
}

// Delay returns BaseDelay as a duration.
func (it Item) Delay() time.Duration {
	return time.Duration(it.BaseDelay * float64(time.Second))
}

// Parse decodes and validates a JSON document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at name in fsys.
func Load(fsys fs.FS, name string) (*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("page: read %s: %w", name, err)
	}
	return Parse(data)
}

// Validate checks item kinds and required fields.
func (d *Document) Validate() error {
	for si, s := range d.Sections {
		for ii, it := range s.Items {
			switch it.Kind {
			case KindHeading, KindParagraph:
				if it.Text == "" {
					return fmt.Errorf("%w: section %d item %d: %s without text", ErrInvalidDocument, si, ii, it.Kind)
				}
			case KindAsset:
				if it.Asset == "" {
					return fmt.Errorf("%w: section %d item %d: asset without id", ErrInvalidDocument, si, ii)
				}
			default:
				return fmt.Errorf("%w: section %d item %d: unknown kind %q", ErrInvalidDocument, si, ii, it.Kind)
			}
		}
	}
	return nil
}
