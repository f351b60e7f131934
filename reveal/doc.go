// Package reveal schedules the one-shot reveal animation of a text block.
//
// A block arms a Scheduler against an Observer (the viewport intersection
// signal). The first time the block is visible enough, the scheduler moves
// from Idle to Triggered and stays there; the observation is detached.
//
// Timelines describe what plays after the trigger: stroke and fill phases
// per unit (a line group or a word) with fixed durations and CSS easing
// curves. Every renderer samples the same Timeline, so outline and
// fallback renderings of a block take exactly the same time.
//
//	s := reveal.NewScheduler(reveal.ThresholdHeading)
//	_ = s.Arm(viewport, target, reveal.DefaultRootMargin)
//	<-s.Triggered()
//	tl := reveal.HeadingTimeline()
//	frame := tl.Sample(0, time.Since(s.TriggeredAt()))
package reveal
