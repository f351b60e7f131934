package reveal

import "time"

// State is the reveal state of a block.
type State uint8

const (
	// Idle means the block has not been revealed yet.
	Idle State = iota

	// Triggered is terminal: the reveal has started and never restarts.
	Triggered
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Triggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// Entry is one visibility report for an observed target.
type Entry struct {
	Intersecting bool

	// Ratio is the visible fraction of the target, in [0, 1].
	Ratio float64

	Time time.Time
}

// Transition returns the state after observing e. Only an idle block
// that intersects with at least threshold of its area becomes triggered;
// every other input leaves the state unchanged.
func Transition(s State, e Entry, threshold float64) State {
	if s == Idle && e.Intersecting && e.Ratio >= threshold {
		return Triggered
	}
	return s
}
