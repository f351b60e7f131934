package reveal

import (
	"errors"
	"testing"
	"time"
)

func TestSchedulerTriggersOnce(t *testing.T) {
	v := NewViewport(1000, 800)
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	v.SetClock(func() time.Time { return clock })

	s := NewScheduler(ThresholdHeading)
	if err := s.Arm(v, Rect{Y: 1200, Width: 600, Height: 100}, DefaultRootMargin); err != nil {
		t.Fatalf("Arm: %v", err)
	}
	if s.State() != Idle {
		t.Fatalf("State() = %v before scrolling", s.State())
	}

	clock = clock.Add(3 * time.Second)
	v.ScrollTo(1000)

	select {
	case <-s.Triggered():
	default:
		t.Fatal("Triggered() not closed")
	}
	if s.State() != Triggered {
		t.Errorf("State() = %v, want triggered", s.State())
	}
	if !s.TriggeredAt().Equal(clock) {
		t.Errorf("TriggeredAt() = %v, want %v", s.TriggeredAt(), clock)
	}
	if v.Observed() != 0 {
		t.Error("observation still attached after trigger")
	}

	at := s.TriggeredAt()
	for _, y := range []float64{0, 1000, 0, 1000} {
		v.ScrollTo(y)
	}
	if s.State() != Triggered || !s.TriggeredAt().Equal(at) {
		t.Error("scrolling after trigger changed the scheduler")
	}
}

func TestSchedulerVisibleOnArm(t *testing.T) {
	v := NewViewport(1000, 800)
	s := NewScheduler(ThresholdWord)
	if err := s.Arm(v, Rect{Y: 10, Width: 100, Height: 20}, DefaultRootMargin); err != nil {
		t.Fatalf("Arm: %v", err)
	}
	if s.State() != Triggered {
		t.Errorf("State() = %v, want triggered for a target visible on arm", s.State())
	}
	if v.Observed() != 0 {
		t.Error("observation still attached after trigger during Arm")
	}
}

func TestSchedulerArmTwice(t *testing.T) {
	v := NewViewport(100, 100)
	s := NewScheduler(ThresholdWord)
	target := Rect{Y: 1000, Width: 10, Height: 10}
	if err := s.Arm(v, target, Margin{}); err != nil {
		t.Fatalf("Arm: %v", err)
	}
	if err := s.Arm(v, target, Margin{}); !errors.Is(err, ErrAlreadyArmed) {
		t.Errorf("second Arm error = %v, want ErrAlreadyArmed", err)
	}
}

func TestSchedulerClose(t *testing.T) {
	v := NewViewport(100, 100)
	s := NewScheduler(ThresholdWord)
	if err := s.Arm(v, Rect{Y: 1000, Width: 10, Height: 10}, Margin{}); err != nil {
		t.Fatalf("Arm: %v", err)
	}
	s.Close()
	s.Close()
	if v.Observed() != 0 {
		t.Error("Close did not detach the observation")
	}
	v.ScrollTo(1000)
	s.Trigger(time.Now())
	if s.State() != Idle {
		t.Errorf("State() = %v after Close, want idle", s.State())
	}
	if err := s.Arm(v, Rect{}, Margin{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Arm after Close error = %v, want ErrClosed", err)
	}
}

func TestSchedulerTrigger(t *testing.T) {
	s := NewScheduler(ThresholdHeading)
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.Trigger(at)
	s.Trigger(at.Add(time.Hour))
	if !s.TriggeredAt().Equal(at) {
		t.Errorf("TriggeredAt() = %v, want first trigger %v", s.TriggeredAt(), at)
	}
}
