package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(tps)
	fs.now = clk.now
	return fs, clk
}

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs, clk := newTestStep(2)
	if !fs.ShouldStep() {
		t.Fatal("first poll should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll at the same instant should not fire")
	}
	clk.advance(400 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	clk.advance(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
}

func TestFixedStepStallDoesNotBurst(t *testing.T) {
	fs, clk := newTestStep(10)
	fs.ShouldStep()
	clk.advance(5 * time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("stall produced %d ticks, want at most 2", fired)
	}
}

func TestFixedStepSpeedBounds(t *testing.T) {
	fs := NewFixedStep(2)
	if got := fs.Faster(); got != 3 {
		t.Fatalf("Faster = %d, want 3", got)
	}
	if fs.Interval() != time.Second/3 {
		t.Fatalf("interval = %v", fs.Interval())
	}
	fs.Slower()
	fs.Slower()
	if got := fs.Slower(); got != MinTPS {
		t.Fatalf("Slower = %d, want %d", got, MinTPS)
	}
	if got := fs.Slower(); got != MinTPS {
		t.Fatalf("Slower went below minimum: %d", got)
	}
}

func TestFixedStepCapsRate(t *testing.T) {
	fs := NewFixedStep(2_000_000_000)
	if got := fs.TPS(); got != MaxTPS {
		t.Fatalf("TPS = %d, want %d", got, MaxTPS)
	}
	if fs.Interval() <= 0 {
		t.Fatalf("interval = %v, want positive", fs.Interval())
	}
	if got := fs.Faster(); got != MaxTPS {
		t.Fatalf("Faster went above maximum: %d", got)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	if got := NewFixedStep(0).TPS(); got != DefaultTPS {
		t.Fatalf("TPS = %d, want %d", got, DefaultTPS)
	}
	if got := NewFixedStep(-4).TPS(); got != DefaultTPS {
		t.Fatalf("TPS = %d, want %d", got, DefaultTPS)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs, clk := newTestStep(1)
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("reset step fired immediately")
	}
	clk.advance(time.Second)
	if !fs.ShouldStep() {
		t.Fatal("reset step did not fire after an interval")
	}
}
