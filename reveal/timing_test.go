package reveal

import (
	"math"
	"testing"
	"time"
)

func TestWordTimelineStagger(t *testing.T) {
	indices := []int{0, 2, 4, 6}
	tl := WordTimeline(indices, 0, DefaultStagger)

	for n, i := range indices {
		want := time.Duration(i) * 20 * time.Millisecond
		u := tl.Units[n]
		if got := u.Delay(); got != want {
			t.Errorf("token %d delay = %v, want %v", i, got, want)
		}
		fill, ok := u.Phase(PropFill)
		if !ok {
			t.Fatalf("token %d has no fill phase", i)
		}
		if fill.Delay != want+150*time.Millisecond || fill.Duration != 300*time.Millisecond {
			t.Errorf("token %d fill = %v+%v", i, fill.Delay, fill.Duration)
		}
	}
	if got, want := tl.Duration(), 6*DefaultStagger+WordStroke; got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
}

func TestWordTimelineBaseDelay(t *testing.T) {
	tl := WordTimeline([]int{3}, 400*time.Millisecond, 50*time.Millisecond)
	if got, want := tl.Units[0].Delay(), 550*time.Millisecond; got != want {
		t.Errorf("delay = %v, want %v", got, want)
	}
}

func TestHeadingTimeline(t *testing.T) {
	tl := HeadingTimeline()
	if tl.Mode != ModeHeadingTrace {
		t.Errorf("Mode = %v", tl.Mode)
	}
	if got := tl.Duration(); got != 1200*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.2s", got)
	}

	tests := []struct {
		elapsed      time.Duration
		stroke, fill float64
	}{
		{0, 0, 0},
		{500 * time.Millisecond, EaseInOut.At(500.0 / 1200), 0},
		{600 * time.Millisecond, 0.5, EaseOut.At(100.0 / 600)},
		{1200 * time.Millisecond, 1, 1},
		{5 * time.Second, 1, 1},
	}
	for _, tt := range tests {
		f := tl.Sample(0, tt.elapsed)
		if math.Abs(f.Stroke-tt.stroke) > 1e-9 || math.Abs(f.Fill-tt.fill) > 1e-9 {
			t.Errorf("frame at %v = %+v, want stroke %v fill %v", tt.elapsed, f, tt.stroke, tt.fill)
		}
	}
}

func TestParagraphTimeline(t *testing.T) {
	tl := ParagraphTimeline(100 * time.Millisecond)

	start := tl.Sample(0, 0)
	if start.Opacity != 0 || start.OffsetY != ParagraphOffset {
		t.Errorf("start frame = %+v", start)
	}
	mid := tl.Sample(0, 500*time.Millisecond)
	if mid.Opacity <= 0 || mid.Opacity >= 1 || mid.OffsetY <= 0 || mid.OffsetY >= ParagraphOffset {
		t.Errorf("mid frame = %+v", mid)
	}
	end := tl.Sample(0, 900*time.Millisecond)
	if end.Opacity != 1 || end.OffsetY != 0 {
		t.Errorf("end frame = %+v", end)
	}
}

func TestTimelineSampleOutOfRange(t *testing.T) {
	f := HeadingTimeline().Sample(5, time.Second)
	if f != (Frame{Opacity: 1}) {
		t.Errorf("Sample(5) = %+v, want resting frame", f)
	}
}

func TestModeThreshold(t *testing.T) {
	tests := []struct {
		mode Mode
		want float64
	}{
		{ModeWordTrace, 0.1},
		{ModeHeadingTrace, 0.2},
		{ModeParagraph, 0.1},
	}
	for _, tt := range tests {
		if got := tt.mode.Threshold(); got != tt.want {
			t.Errorf("%v.Threshold() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
