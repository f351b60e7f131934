package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/glyphtrace/reveal"
)

// RevealedClass is the class a host adds to a block's container to start
// its animations.
const RevealedClass = "is-revealed"

// Stylesheet holds the keyframes and play-state rules shared by every
// unit. Animated elements stay paused until an ancestor has RevealedClass
// or the unit was written with WithAutoplay.
const Stylesheet = `@keyframes gt-stroke{from{stroke-dashoffset:var(--gt-len,1)}to{stroke-dashoffset:0}}
@keyframes gt-fill{from{fill-opacity:0}to{fill-opacity:1}}
@keyframes gt-fade{from{opacity:0;transform:translateY(var(--gt-dy,20px))}to{opacity:1;transform:none}}
.gt-anim{animation-play-state:paused}
.` + RevealedClass + ` .gt-anim,.gt-autoplay .gt-anim{animation-play-state:running}
.gt-unit{display:inline-block;overflow:visible;vertical-align:baseline}
@media (prefers-reduced-motion:reduce){.gt-anim{animation-duration:1ms!important;animation-delay:0s!important}}
`

// SVGOption configures SVG output.
type SVGOption func(*svgConfig)

type svgConfig struct {
	autoplay    bool
	inlineStyle bool
	label       string
	class       string
	strokeWidth float64
}

func defaultSVGConfig() svgConfig {
	return svgConfig{strokeWidth: 1}
}

// WithAutoplay starts the animation as soon as the markup is shown.
func WithAutoplay() SVGOption {
	return func(c *svgConfig) { c.autoplay = true }
}

// WithInlineStyle embeds Stylesheet in the output, for standalone files.
func WithInlineStyle() SVGOption {
	return func(c *svgConfig) { c.inlineStyle = true }
}

// WithLabel sets the accessible label of the unit.
func WithLabel(label string) SVGOption {
	return func(c *svgConfig) { c.label = label }
}

// WithClass adds a class to the root element.
func WithClass(class string) SVGOption {
	return func(c *svgConfig) { c.class = class }
}

// WithStrokeWidth sets the outline stroke width in pixels.
func WithStrokeWidth(w float64) SVGOption {
	return func(c *svgConfig) {
		if w > 0 {
			c.strokeWidth = w
		}
	}
}

// WriteStyles writes Stylesheet in a style element.
func WriteStyles(w io.Writer) error {
	_, err := io.WriteString(w, "<style>\n"+Stylesheet+"</style>\n")
	return err
}

// WriteUnit writes one unit as an inline SVG element animated by u.
func WriteUnit(w io.Writer, m Mode, u reveal.Unit, opts ...SVGOption) error {
	cfg := defaultSVGConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := m.Surface()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="%s" width="%s" height="%s"`,
		rootClass(cfg, "gt-unit"), s.ViewBox(), num(s.Width), num(s.Height))
	if cfg.label != "" {
		fmt.Fprintf(&sb, ` role="img" aria-label="%s"`, html.EscapeString(cfg.label))
	} else {
		sb.WriteString(` aria-hidden="true"`)
	}
	sb.WriteString(">")
	if cfg.inlineStyle {
		sb.WriteString("<style>" + Stylesheet + "</style>")
	}

	switch m := m.(type) {
	case VectorOutline:
		fmt.Fprintf(&sb,
			`<path class="gt-anim" d="%s" fill="currentColor" fill-opacity="0" stroke="currentColor" stroke-width="%s" pathLength="1" stroke-dasharray="1" stroke-dashoffset="1" style="animation:%s"/>`,
			m.PathData, num(cfg.strokeWidth), animation(u))
	case FallbackText:
		for i, line := range m.Lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			length := num(m.Widths[i])
			font := fmt.Sprintf(`x="0" y="%s" font-family="%s" font-size="%s" font-weight="%s"`,
				num(m.Baseline(i)), html.EscapeString(m.Family), num(m.Size), num(m.Weight))
			// Outline stroke, then the filled copy on top of it.
			fmt.Fprintf(&sb,
				`<text class="gt-anim" %s fill="none" stroke="currentColor" stroke-width="%s" stroke-dasharray="%s" stroke-dashoffset="%s" style="--gt-len:%s;animation:%s">%s</text>`,
				font, num(cfg.strokeWidth*0.5), length, length, length, animation(u), html.EscapeString(line))
			fmt.Fprintf(&sb,
				`<text class="gt-anim" %s fill="currentColor" fill-opacity="0" aria-hidden="true" style="animation:%s">%s</text>`,
				font, animation(u), html.EscapeString(line))
		}
	default:
		return fmt.Errorf("render: unsupported mode %T", m)
	}
	sb.WriteString("</svg>")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteParagraph writes s as a paragraph that fades in with u.
func WriteParagraph(w io.Writer, s string, u reveal.Unit, opts ...SVGOption) error {
	cfg := defaultSVGConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	dy := reveal.ParagraphOffset
	if p, ok := u.Phase(reveal.PropOffsetY); ok {
		dy = p.From
	}
	_, err := fmt.Fprintf(w, `<p class="%s"><span class="gt-anim" style="display:inline-block;--gt-dy:%spx;animation:%s">%s</span></p>`,
		rootClass(cfg, "gt-para"), num(dy), animation(u), html.EscapeString(s))
	return err
}

// WriteSpace writes a whitespace token between word units.
func WriteSpace(w io.Writer, s string) error {
	_, err := io.WriteString(w, `<span class="gt-space">`+html.EscapeString(s)+`</span>`)
	return err
}

func rootClass(cfg svgConfig, base string) string {
	class := base
	if cfg.autoplay {
		class += " gt-autoplay"
	}
	if cfg.class != "" {
		class += " " + html.EscapeString(cfg.class)
	}
	return class
}

// animation returns the CSS animation shorthand for the phases of u.
func animation(u reveal.Unit) string {
	var parts []string
	for _, p := range u.Phases {
		var name string
		switch p.Property {
		case reveal.PropStroke:
			name = "gt-stroke"
		case reveal.PropFill:
			name = "gt-fill"
		case reveal.PropOpacity:
			name = "gt-fade"
		default:
			// The offset shares the fade keyframes.
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s %s %s both", name, ms(p.Duration), p.Ease.CSS(), ms(p.Delay)))
	}
	return strings.Join(parts, ",")
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
