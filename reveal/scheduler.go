package reveal

import (
	"errors"
	"sync"
	"time"

	"github.com/gogpu/glyphtrace"
)

// Scheduler errors.
var (
	// ErrAlreadyArmed is returned when Arm is called a second time.
	ErrAlreadyArmed = errors.New("reveal: scheduler already armed")

	// ErrClosed is returned by Arm after Close.
	ErrClosed = errors.New("reveal: scheduler closed")
)

// Scheduler owns the reveal state of one block. It observes visibility
// once and moves from Idle to Triggered at most once.
//
// Scheduler is safe for concurrent use.
type Scheduler struct {
	threshold float64

	mu        sync.Mutex
	state     State
	armed     bool
	closed    bool
	obs       Observation
	at        time.Time
	triggered chan struct{}
}

// NewScheduler returns an idle scheduler that triggers at threshold.
func NewScheduler(threshold float64) *Scheduler {
	return &Scheduler{
		threshold: threshold,
		triggered: make(chan struct{}),
	}
}

// Arm starts observing target through o. A scheduler arms exactly once.
func (s *Scheduler) Arm(o Observer, target Rect, margin Margin) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case s.armed:
		s.mu.Unlock()
		return ErrAlreadyArmed
	}
	s.armed = true
	s.mu.Unlock()

	// The observer may deliver the initial entry before Observe returns.
	obs := o.Observe(ObserveOptions{Target: target, Threshold: s.threshold, RootMargin: margin}, s.handle)

	s.mu.Lock()
	detach := s.closed || s.state == Triggered
	if !detach {
		s.obs = obs
	}
	s.mu.Unlock()
	if detach {
		obs.Disconnect()
	}
	return nil
}

// handle applies one visibility entry.
func (s *Scheduler) handle(e Entry) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	next := Transition(s.state, e, s.threshold)
	if next == s.state {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.at = e.Time
	if s.at.IsZero() {
		s.at = time.Now()
	}
	close(s.triggered)
	obs := s.obs
	s.obs = nil
	s.mu.Unlock()

	glyphtrace.Logger().Debug("reveal: triggered", "ratio", e.Ratio)
	if obs != nil {
		obs.Disconnect()
	}
}

// Trigger forces the transition to Triggered at time t, for hosts that
// reveal without a viewport (static export, reduced motion). It has no
// effect on a scheduler that already triggered or was closed.
func (s *Scheduler) Trigger(t time.Time) {
	s.handle(Entry{Intersecting: true, Ratio: 1, Time: t})
}

// State returns the current state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Triggered returns a channel that is closed when the scheduler triggers.
func (s *Scheduler) Triggered() <-chan struct{} {
	return s.triggered
}

// TriggeredAt returns the trigger time, or the zero time while idle.
func (s *Scheduler) TriggeredAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at
}

// Close detaches the observation. Later entries are ignored; the state is
// kept.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	obs := s.obs
	s.obs = nil
	s.mu.Unlock()
	if obs != nil {
		obs.Disconnect()
	}
}
