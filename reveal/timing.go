package reveal

import "time"

// Mode selects one of the fixed timing schemes.
type Mode uint8

const (
	// ModeWordTrace reveals word by word: a short stroke per word,
	// staggered by token position.
	ModeWordTrace Mode = iota

	// ModeHeadingTrace reveals a whole heading with one long stroke
	// followed by the fill.
	ModeHeadingTrace

	// ModeParagraph fades and slides plain text in.
	ModeParagraph
)

func (m Mode) String() string {
	switch m {
	case ModeWordTrace:
		return "word-trace"
	case ModeHeadingTrace:
		return "heading-trace"
	case ModeParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Visibility thresholds per mode.
const (
	ThresholdWord      = 0.1
	ThresholdHeading   = 0.2
	ThresholdParagraph = 0.1
)

// Threshold returns the visible fraction at which a block in mode m
// triggers.
func (m Mode) Threshold() float64 {
	if m == ModeHeadingTrace {
		return ThresholdHeading
	}
	return ThresholdWord
}

// Phase durations and delays.
const (
	DefaultStagger   = 20 * time.Millisecond
	WordStroke       = 500 * time.Millisecond
	WordFill         = 300 * time.Millisecond
	WordFillOffset   = 150 * time.Millisecond
	HeadingStroke    = 1200 * time.Millisecond
	HeadingFillDelay = 500 * time.Millisecond
	HeadingFill      = 600 * time.Millisecond
	ParagraphFade    = 800 * time.Millisecond

	// ParagraphOffset is the initial downward offset of a paragraph in
	// pixels.
	ParagraphOffset = 20.0
)

// Property is an animated value of a unit.
type Property uint8

const (
	// PropStroke is the drawn fraction of the outline, 0 to 1.
	PropStroke Property = iota

	// PropFill is the fill opacity.
	PropFill

	// PropOpacity is the opacity of the whole unit.
	PropOpacity

	// PropOffsetY is a vertical translation in pixels.
	PropOffsetY
)

func (p Property) String() string {
	switch p {
	case PropStroke:
		return "stroke"
	case PropFill:
		return "fill"
	case PropOpacity:
		return "opacity"
	case PropOffsetY:
		return "offset-y"
	default:
		return "unknown"
	}
}

// Phase animates one property from From to To.
type Phase struct {
	Property Property
	Delay    time.Duration
	Duration time.Duration
	Ease     CubicBezier
	From, To float64
}

// End returns the time at which the phase completes.
func (p Phase) End() time.Duration {
	return p.Delay + p.Duration
}

// Value returns the property value at elapsed time since the trigger.
func (p Phase) Value(elapsed time.Duration) float64 {
	if elapsed <= p.Delay {
		return p.From
	}
	if elapsed >= p.End() || p.Duration <= 0 {
		return p.To
	}
	x := float64(elapsed-p.Delay) / float64(p.Duration)
	return p.From + (p.To-p.From)*p.Ease.At(x)
}

// Unit is an independently animated part of a block: a heading, a
// paragraph or a single word.
type Unit struct {
	// Index is the token index for word units, 0 otherwise.
	Index  int
	Phases []Phase
}

// Delay returns the start of the unit's earliest phase.
func (u Unit) Delay() time.Duration {
	if len(u.Phases) == 0 {
		return 0
	}
	d := u.Phases[0].Delay
	for _, p := range u.Phases[1:] {
		d = min(d, p.Delay)
	}
	return d
}

// End returns the time at which the unit's last phase completes.
func (u Unit) End() time.Duration {
	var end time.Duration
	for _, p := range u.Phases {
		end = max(end, p.End())
	}
	return end
}

// Phase returns the unit's phase animating prop.
func (u Unit) Phase(prop Property) (Phase, bool) {
	for _, p := range u.Phases {
		if p.Property == prop {
			return p, true
		}
	}
	return Phase{}, false
}

// Frame is the sampled state of a unit.
type Frame struct {
	Stroke  float64
	Fill    float64
	Opacity float64
	OffsetY float64
}

// Sample returns the unit's frame at elapsed time since the trigger.
// Properties without a phase keep their resting value: nothing drawn, no
// fill, fully opaque, no offset.
func (u Unit) Sample(elapsed time.Duration) Frame {
	f := Frame{Opacity: 1}
	for _, p := range u.Phases {
		v := p.Value(elapsed)
		switch p.Property {
		case PropStroke:
			f.Stroke = v
		case PropFill:
			f.Fill = v
		case PropOpacity:
			f.Opacity = v
		case PropOffsetY:
			f.OffsetY = v
		}
	}
	return f
}

// Timeline is the reveal schedule of a block.
type Timeline struct {
	Mode  Mode
	Units []Unit
}

// Duration returns the time from trigger until the last unit completes.
func (t Timeline) Duration() time.Duration {
	var end time.Duration
	for _, u := range t.Units {
		end = max(end, u.End())
	}
	return end
}

// Sample returns the frame of unit i at elapsed time since the trigger.
func (t Timeline) Sample(i int, elapsed time.Duration) Frame {
	if i < 0 || i >= len(t.Units) {
		return Frame{Opacity: 1}
	}
	return t.Units[i].Sample(elapsed)
}

// WordUnit returns the timing of the word at token index i.
func WordUnit(i int, baseDelay, stagger time.Duration) Unit {
	delay := baseDelay + time.Duration(i)*stagger
	return Unit{
		Index: i,
		Phases: []Phase{
			{Property: PropStroke, Delay: delay, Duration: WordStroke, Ease: EaseInOut, From: 0, To: 1},
			{Property: PropFill, Delay: delay + WordFillOffset, Duration: WordFill, Ease: EaseOut, From: 0, To: 1},
		},
	}
}

// WordTimeline returns a word trace timeline for the words at the given
// token indices.
func WordTimeline(indices []int, baseDelay, stagger time.Duration) Timeline {
	t := Timeline{Mode: ModeWordTrace, Units: make([]Unit, len(indices))}
	for n, i := range indices {
		t.Units[n] = WordUnit(i, baseDelay, stagger)
	}
	return t
}

// HeadingTimeline returns the heading trace timeline.
func HeadingTimeline() Timeline {
	return Timeline{Mode: ModeHeadingTrace, Units: []Unit{{
		Phases: []Phase{
			{Property: PropStroke, Delay: 0, Duration: HeadingStroke, Ease: EaseInOut, From: 0, To: 1},
			{Property: PropFill, Delay: HeadingFillDelay, Duration: HeadingFill, Ease: EaseOut, From: 0, To: 1},
		},
	}}}
}

// ParagraphTimeline returns the plain paragraph fade-in timeline.
func ParagraphTimeline(baseDelay time.Duration) Timeline {
	return Timeline{Mode: ModeParagraph, Units: []Unit{{
		Phases: []Phase{
			{Property: PropOpacity, Delay: baseDelay, Duration: ParagraphFade, Ease: EaseOut, From: 0, To: 1},
			{Property: PropOffsetY, Delay: baseDelay, Duration: ParagraphFade, Ease: EaseOut, From: ParagraphOffset, To: 0},
		},
	}}}
}
