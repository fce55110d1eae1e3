package core

import "time"

// DefaultTPS is the tick rate used when none is configured.
const DefaultTPS = 2

// MinTPS is the slowest rate Slower can reach.
const MinTPS = 1

// MaxTPS is the fastest supported rate. It keeps a tick at least a
// millisecond long.
const MaxTPS = 1000

// FixedStep gates simulation ticks to a steady ticks-per-second rate. It is
// polled from a frame loop and never sleeps.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given TPS. The first poll
// always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Values below MinTPS fall back to DefaultTPS
// and values above MaxTPS are capped.
func (f *FixedStep) SetTPS(tps int) {
	switch {
	case tps < MinTPS:
		tps = DefaultTPS
	case tps > MaxTPS:
		tps = MaxTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Faster raises the rate by one tick per second, stopping at MaxTPS.
func (f *FixedStep) Faster() int {
	if f.tps < MaxTPS {
		f.SetTPS(f.tps + 1)
	}
	return f.tps
}

// Slower lowers the rate by one tick per second, stopping at MinTPS.
func (f *FixedStep) Slower() int {
	if f.tps > MinTPS {
		f.SetTPS(f.tps - 1)
	}
	return f.tps
}

// Reset discards accumulated time so the next tick waits a full interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// A long stall yields one tick, not a burst.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
