package render

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/glyphtrace"
)

// DefaultFamily is the CSS font stack of fallback text.
const DefaultFamily = "'EB Garamond', serif"

// boldWeight is the weight from which the bold face measures text.
const boldWeight = 600

// Measurer measures the inline length of a line of text in pixels.
type Measurer interface {
	Measure(s string, size, weight float64) (float64, error)
}

// FaceMeasurer measures text with the bundled Go fonts, regular below
// weight 600 and bold above.
//
// FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	regular *sfnt.Font
	bold    *sfnt.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

var (
	defaultMeasurerOnce sync.Once
	defaultMeasurer     *FaceMeasurer
	defaultMeasurerErr  error
)

// DefaultMeasurer returns the shared FaceMeasurer.
func DefaultMeasurer() (*FaceMeasurer, error) {
	defaultMeasurerOnce.Do(func() {
		defaultMeasurer, defaultMeasurerErr = NewFaceMeasurer(goregular.TTF, gobold.TTF)
	})
	return defaultMeasurer, defaultMeasurerErr
}

// NewFaceMeasurer parses a regular and a bold font for measuring.
func NewFaceMeasurer(regular, bold []byte) (*FaceMeasurer, error) {
	r, err := opentype.Parse(regular)
	if err != nil {
		return nil, fmt.Errorf("render: parse regular face: %w", err)
	}
	b, err := opentype.Parse(bold)
	if err != nil {
		return nil, fmt.Errorf("render: parse bold face: %w", err)
	}
	return &FaceMeasurer{regular: r, bold: b, faces: make(map[faceKey]font.Face)}, nil
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string, size, weight float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := faceKey{size: size, bold: weight >= boldWeight}
	face, ok := m.faces[key]
	if !ok {
		f := m.regular
		if key.bold {
			f = m.bold
		}
		var err error
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return 0, fmt.Errorf("render: face at %gpx: %w", size, err)
		}
		m.faces[key] = face
	}
	adv := font.MeasureString(face, s)
	return float64(adv) / 64, nil
}

// NewFallback builds the plain-text mode for s. Lines are split on "\n"
// or "\r\n" and measured with m; a nil m uses DefaultMeasurer.
func NewFallback(s string, size, weight, lineGap float64, m Measurer) (FallbackText, error) {
	if m == nil {
		dm, err := DefaultMeasurer()
		if err != nil {
			return FallbackText{}, err
		}
		m = dm
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")

	f := FallbackText{
		Lines:   lines,
		Widths:  make([]float64, len(lines)),
		Size:    size,
		Weight:  weight,
		LineGap: lineGap,
		Family:  DefaultFamily,
	}
	for i, line := range lines {
		w, err := m.Measure(line, size, weight)
		if err != nil {
			return FallbackText{}, err
		}
		f.Widths[i] = w
		f.MeasuredLength += w
	}
	glyphtrace.Logger().Debug("render: fallback measured",
		"lines", len(lines), "length", f.MeasuredLength)
	return f, nil
}
