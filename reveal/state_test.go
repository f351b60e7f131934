package reveal

import (
	"math/rand/v2"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		state State
		entry Entry
		want  State
	}{
		{"not intersecting", Idle, Entry{Intersecting: false, Ratio: 0.5}, Idle},
		{"below threshold", Idle, Entry{Intersecting: true, Ratio: 0.05}, Idle},
		{"at threshold", Idle, Entry{Intersecting: true, Ratio: 0.1}, Triggered},
		{"fully visible", Idle, Entry{Intersecting: true, Ratio: 1}, Triggered},
		{"leaving keeps triggered", Triggered, Entry{Intersecting: false}, Triggered},
		{"reentering keeps triggered", Triggered, Entry{Intersecting: true, Ratio: 1}, Triggered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transition(tt.state, tt.entry, 0.1); got != tt.want {
				t.Errorf("Transition = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransitionTriggersAtMostOnce(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	state := Idle
	changes := 0
	for range 1000 {
		e := Entry{Intersecting: r.IntN(2) == 0, Ratio: r.Float64()}
		next := Transition(state, e, ThresholdHeading)
		if next != state {
			changes++
		}
		state = next
	}
	if changes != 1 {
		t.Errorf("state changed %d times, want 1", changes)
	}
	if state != Triggered {
		t.Errorf("final state = %v, want triggered", state)
	}
}
