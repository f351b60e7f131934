package block

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/render"
	"github.com/gogpu/glyphtrace/reveal"
	"github.com/gogpu/glyphtrace/text"
)

// Kind is the kind of block.
type Kind uint8

// Block kinds.
const (
	KindHeading Kind = iota
	KindParagraph
)

// Env holds the session services shared by blocks.
type Env struct {
	// Loader loads fonts. A nil Loader renders every block as plain text.
	Loader *text.Loader

	// Measurer measures fallback text. nil uses render.DefaultMeasurer.
	Measurer render.Measurer

	// Observer reports viewport visibility. With a nil Observer a mounted
	// block triggers immediately.
	Observer reveal.Observer

	// Clock returns the current time. nil means time.Now.
	Clock func() time.Time
}

func (e Env) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}

// Unit is a rendered piece of a block: the whole heading, one token of a
// traced paragraph, or the plain paragraph.
type Unit struct {
	// Token is set for the units of a traced paragraph.
	Token text.Token

	// Mode is nil for whitespace tokens and plain paragraphs.
	Mode render.Mode

	Timing reveal.Unit
}

// Block is one heading or paragraph with its reveal.
//
// Block is safe for concurrent use.
type Block struct {
	kind Kind
	cfg  config

	sched *reveal.Scheduler

	mu        sync.Mutex
	text      string
	gen       int
	mounted   bool
	closed    bool
	cancel    context.CancelFunc
	settled   chan struct{}
	settledAt time.Time
	units     []Unit
	timeline  reveal.Timeline
	reason    error
}

// NewHeading returns a heading block, traced as a whole.
func NewHeading(s string, opts ...Option) *Block {
	return newBlock(KindHeading, s, defaultHeadingConfig(), opts)
}

// NewParagraph returns a paragraph block.
func NewParagraph(s string, opts ...Option) *Block {
	return newBlock(KindParagraph, s, defaultParagraphConfig(), opts)
}

func newBlock(kind Kind, s string, cfg config, opts []Option) *Block {
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Block{
		kind:    kind,
		cfg:     cfg,
		text:    s,
		settled: make(chan struct{}),
	}
	b.sched = reveal.NewScheduler(b.Mode().Threshold())
	return b
}

// Kind returns the block kind.
func (b *Block) Kind() Kind { return b.kind }

// Mode returns the reveal mode of the block.
func (b *Block) Mode() reveal.Mode {
	switch {
	case b.kind == KindHeading:
		return reveal.ModeHeadingTrace
	case b.cfg.outline:
		return reveal.ModeWordTrace
	default:
		return reveal.ModeParagraph
	}
}

// Text returns the current text.
func (b *Block) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Scheduler returns the block's reveal scheduler.
func (b *Block) Scheduler() *reveal.Scheduler { return b.sched }

// Mount arms the reveal and starts loading in the background. Loading
// never blocks the caller; a trigger that arrives before layout completes
// plays once layout is done.
func (b *Block) Mount(ctx context.Context, env Env, target reveal.Rect) error {
	b.mu.Lock()
	switch {
	case b.closed:
		b.mu.Unlock()
		return ErrClosed
	case b.mounted:
		b.mu.Unlock()
		return ErrAlreadyMounted
	}
	b.mounted = true
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.mu.Unlock()

	if env.Observer != nil {
		if err := b.sched.Arm(env.Observer, target, reveal.DefaultRootMargin); err != nil {
			cancel()
			b.mu.Lock()
			b.mounted = false
			b.cancel = nil
			b.mu.Unlock()
			return err
		}
	} else {
		b.sched.Trigger(env.now())
	}

	go func() {
		err := b.Load(ctx, env)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrClosed) {
			glyphtrace.Logger().Warn("block: load failed", "err", err)
		}
	}()
	return nil
}

// Load lays out the block synchronously. Font failures are not errors:
// the block settles with fallback units and FallbackReason reports the
// cause. Load returns an error only when ctx is cancelled or the block is
// closed.
func (b *Block) Load(ctx context.Context, env Env) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	s, gen := b.text, b.gen
	b.mu.Unlock()

	l, err := b.build(ctx, env, s)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if gen != b.gen {
		// Superseded by SetText.
		return nil
	}
	b.units, b.timeline, b.reason = l.units, l.timeline, l.reason
	select {
	case <-b.settled:
	default:
		// Later layouts keep the first playback start.
		b.settledAt = env.now()
		close(b.settled)
	}
	return nil
}

// SetText replaces the text and lays the block out again. The reveal
// state is kept: a block that already played shows the new text settled.
func (b *Block) SetText(ctx context.Context, env Env, s string) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.text = s
	b.gen++
	b.mu.Unlock()
	return b.Load(ctx, env)
}

// Settled returns a channel that is closed once the first layout
// completes.
func (b *Block) Settled() <-chan struct{} { return b.settled }

// Units returns the rendered units. It is nil before the block settles.
func (b *Block) Units() []Unit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Unit(nil), b.units...)
}

// Timeline returns the reveal timeline of the animated units.
func (b *Block) Timeline() reveal.Timeline {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.timeline
}

// FallbackReason returns why the block renders plain text, or nil when
// every traced unit has an outline.
func (b *Block) FallbackReason() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reason
}

// PlaybackStart returns when the reveal starts playing: the later of the
// trigger and the layout. ok is false while either is pending.
func (b *Block) PlaybackStart() (start time.Time, ok bool) {
	if b.sched.State() != reveal.Triggered {
		return time.Time{}, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	select {
	case <-b.settled:
	default:
		return time.Time{}, false
	}
	start = b.sched.TriggeredAt()
	if b.settledAt.After(start) {
		start = b.settledAt
	}
	return start, true
}

// Frame returns the frame of unit i at time now. Before playback starts
// every unit is at rest.
func (b *Block) Frame(i int, now time.Time) reveal.Frame {
	units := b.Units()
	if i < 0 || i >= len(units) {
		return reveal.Frame{Opacity: 1}
	}
	var elapsed time.Duration
	if start, ok := b.PlaybackStart(); ok && now.After(start) {
		elapsed = now.Sub(start)
	}
	return units[i].Timing.Sample(elapsed)
}

// Close cancels an in-flight load and detaches the reveal observation.
// Results that arrive later are discarded.
func (b *Block) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	cancel := b.cancel
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.sched.Close()
}
