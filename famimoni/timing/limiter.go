package timing

import (
	"log/slog"
	"time"
)

// Limiter paces the frame loop to the console refresh rate.
type Limiter interface {
	// WaitForNextFrame blocks until the next frame is due.
	// Returns immediately if the loop is behind schedule.
	WaitForNextFrame()

	// Reset restarts the schedule, useful after a stall.
	Reset()

	// Stop releases the limiter. Later waits return immediately.
	Stop()
}

// NTSC timing. The picture unit runs 341 dots on each of 262 lines, and
// every other frame drops one dot.
const (
	PPUFrequency  = 5369318
	DotsPerLine   = 341
	LinesPerFrame = 262
)

// DotsPerFrame is the average frame length in dots.
const DotsPerFrame = DotsPerLine*LinesPerFrame - 0.5

// TargetFPS returns the NTSC frame rate, about 60.0988 Hz.
func TargetFPS() float64 {
	return float64(PPUFrequency) / DotsPerFrame
}

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / TargetFPS())
}

// NewNoOpLimiter returns a limiter that never waits (for headless runs).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}
func (n *noOpLimiter) Stop()             {}

// TickerLimiter paces frames with a time.Ticker at the NTSC rate. The ticker
// drops ticks nobody reads, so a slow frame is counted as late instead of
// being followed by a burst of catch-up frames.
type TickerLimiter struct {
	ticker  *time.Ticker
	last    time.Time
	frames  uint64
	late    uint64
	stopped bool
}

func NewTickerLimiter() *TickerLimiter {
	return &TickerLimiter{
		ticker: time.NewTicker(FrameDuration()),
		last:   time.Now(),
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	if t.stopped {
		return
	}

	<-t.ticker.C
	now := time.Now()
	// more than one and a half periods since the last frame means at least
	// one tick was dropped
	if now.Sub(t.last) > FrameDuration()*3/2 {
		t.late++
	}
	t.last = now
	t.frames++
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(FrameDuration())
	t.last = time.Now()
}

func (t *TickerLimiter) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.ticker.Stop()
	slog.Debug("Frame limiter stopped", "frames", t.frames, "late", t.late)
}

// Frames returns how many frames the limiter has paced.
func (t *TickerLimiter) Frames() uint64 {
	return t.frames
}

// Late returns how many paced frames came after one or more dropped ticks.
func (t *TickerLimiter) Late() uint64 {
	return t.late
}
