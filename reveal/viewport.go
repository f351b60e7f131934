package reveal

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gogpu/glyphtrace/internal/geom"
)

// Rect is a box in document coordinates, y-down.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) geom() geom.Rect {
	return geom.Rect{Min: geom.Pt(r.X, r.Y), Max: geom.Pt(r.X+r.Width, r.Y+r.Height)}
}

// Length is a margin length in pixels or percent of the root size.
type Length struct {
	Value   float64
	Percent bool
}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Value: v} }

// Pct returns a length in percent of the root dimension.
func Pct(v float64) Length { return Length{Value: v, Percent: true} }

func (l Length) resolve(dim float64) float64 {
	if l.Percent {
		return l.Value * dim / 100
	}
	return l.Value
}

func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'g', -1, 64)
	if l.Percent {
		return v + "%"
	}
	return v + "px"
}

// Margin grows (positive) or shrinks (negative) the root box before
// intersections are computed, like the CSS rootMargin of an
// IntersectionObserver.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// DefaultRootMargin shrinks the bottom of the viewport by 20% so blocks
// reveal once they are clearly on screen.
var DefaultRootMargin = Margin{Bottom: Pct(-20)}

// CSS returns the margin in CSS rootMargin syntax.
func (m Margin) CSS() string {
	return fmt.Sprintf("%s %s %s %s", m.Top, m.Right, m.Bottom, m.Left)
}

// ObserveOptions configures an observation.
type ObserveOptions struct {
	Target     Rect
	Threshold  float64
	RootMargin Margin
}

// Observer delivers visibility entries for a target. Callbacks may arrive
// on any goroutine.
type Observer interface {
	Observe(opts ObserveOptions, fn func(Entry)) Observation
}

// Observation is an active observation.
type Observation interface {
	// Disconnect stops delivery. It is safe to call more than once and
	// from within the callback.
	Disconnect()
}

// Viewport is an in-process Observer over a vertically scrolling
// document. Entries are delivered synchronously from ScrollTo and
// Resize whenever a target crosses its threshold, and once on Observe.
type Viewport struct {
	mu      sync.Mutex
	width   float64
	height  float64
	scrollY float64
	now     func() time.Time
	obs     map[*viewportObservation]struct{}
}

// NewViewport returns a viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		width:  width,
		height: height,
		now:    time.Now,
		obs:    make(map[*viewportObservation]struct{}),
	}
}

// SetClock replaces the time source used for entries.
func (v *Viewport) SetClock(now func() time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.now = now
}

type viewportObservation struct {
	v    *Viewport
	opts ObserveOptions
	fn   func(Entry)
	last int8 // -1 unknown, 0 below threshold, 1 at or above
}

// Disconnect implements Observation.
func (o *viewportObservation) Disconnect() {
	o.v.mu.Lock()
	defer o.v.mu.Unlock()
	delete(o.v.obs, o)
}

// Observe implements Observer.
func (v *Viewport) Observe(opts ObserveOptions, fn func(Entry)) Observation {
	o := &viewportObservation{v: v, opts: opts, fn: fn, last: -1}
	v.mu.Lock()
	v.obs[o] = struct{}{}
	v.mu.Unlock()
	v.update()
	return o
}

// ScrollTo scrolls the document so y is at the top of the viewport.
func (v *Viewport) ScrollTo(y float64) {
	v.mu.Lock()
	v.scrollY = y
	v.mu.Unlock()
	v.update()
}

// Resize changes the viewport size.
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	v.width, v.height = width, height
	v.mu.Unlock()
	v.update()
}

// Observed returns the number of active observations.
func (v *Viewport) Observed() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.obs)
}

type delivery struct {
	fn func(Entry)
	e  Entry
}

// update recomputes every observation and delivers entries outside the
// lock, so callbacks may disconnect or observe again.
func (v *Viewport) update() {
	v.mu.Lock()
	now := v.now()
	var out []delivery
	for o := range v.obs {
		e := v.entry(o.opts, now)
		state := int8(0)
		if e.Intersecting && e.Ratio >= o.opts.Threshold {
			state = 1
		}
		if state == o.last {
			continue
		}
		o.last = state
		out = append(out, delivery{fn: o.fn, e: e})
	}
	v.mu.Unlock()

	for _, d := range out {
		d.fn(d.e)
	}
}

// entry computes the intersection of a target with the margin-adjusted
// root. Caller must hold v.mu.
func (v *Viewport) entry(opts ObserveOptions, now time.Time) Entry {
	m := opts.RootMargin
	root := geom.Rect{
		Min: geom.Pt(-m.Left.resolve(v.width), v.scrollY-m.Top.resolve(v.height)),
		Max: geom.Pt(v.width+m.Right.resolve(v.width), v.scrollY+v.height+m.Bottom.resolve(v.height)),
	}
	target := opts.Target.geom()

	e := Entry{Time: now}
	if root.Empty() {
		return e
	}
	hit := target.Intersect(root)
	if hit.Empty() {
		return e
	}
	e.Intersecting = true
	if area := target.Area(); area > 0 {
		e.Ratio = hit.Area() / area
	} else {
		e.Ratio = 1
	}
	return e
}
