package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tetralife/internal/logging"
	"tetralife/pkg/sims/life"
)

// Runner drives a session headlessly from a ticker.
type Runner struct {
	session *Session
	// Interval overrides the session's tick rate when positive.
	Interval time.Duration
	// OnTick, when set, observes every completed step.
	OnTick func(life.Report)
	log    *zap.Logger
}

// NewRunner wraps s. A nil logger discards output.
func NewRunner(s *Session, log *zap.Logger) *Runner {
	return &Runner{session: s, log: logging.OrNop(log)}
}

// Run starts play and ticks until generations steps have run or ctx ends.
// A non-positive generations runs until ctx ends. It returns the number of
// steps taken and ctx's error if the context ended first.
func (r *Runner) Run(ctx context.Context, generations int) (int, error) {
	interval := r.Interval
	if interval <= 0 {
		interval = r.session.Interval()
	}
	r.session.Start()
	if r.session.State() == StatePaused {
		r.session.TogglePause()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	steps := 0
	for generations <= 0 || steps < generations {
		select {
		case <-ctx.Done():
			r.log.Info("run interrupted", zap.Int("steps", steps), zap.Error(ctx.Err()))
			return steps, ctx.Err()
		case <-ticker.C:
		}
		report, ok := r.session.Tick()
		if !ok {
			continue
		}
		steps++
		if r.OnTick != nil {
			r.OnTick(report)
		}
	}
	r.log.Info("run complete",
		zap.Int("steps", steps),
		zap.Int64("generation", r.session.Universe().Generation()),
		zap.Int64("population", r.session.Universe().Population()))
	return steps, nil
}
