// Package session ties a universe to its stepper, save store and tick
// schedule, and implements the game's state machine. A Session is not safe
// for concurrent use.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tetralife/internal/core"
	"tetralife/internal/logging"
	"tetralife/internal/patterns"
	"tetralife/internal/saves"
	rng "tetralife/pkg/core"
	"tetralife/pkg/sims/life"
	"tetralife/pkg/tetra"
)

// ResumePrefix marks save slots that resume play immediately after loading.
const ResumePrefix = "test_"

// Options configures a new session.
type Options struct {
	Size  int
	Seed  int64
	TPS   int
	Store *saves.Store
	// Binder receives spawn/despawn events. Nil discards them.
	Binder life.Binder
	Log    *zap.Logger
}

// sweeper is implemented by binders that can drop all their objects at once.
type sweeper interface {
	Live() int
	Clear()
}

// Session owns the running universe.
type Session struct {
	universe *life.Universe
	stepper  *life.Stepper
	binder   life.Binder
	rng      *rng.RNG
	store    *saves.Store
	timer    *core.FixedStep
	state    State
	log      *zap.Logger
}

// New creates a session in the splash state holding an all-dead universe at
// generation 1.
func New(opts Options) (*Session, error) {
	opts.Log = logging.OrNop(opts.Log)
	if opts.Binder == nil {
		opts.Binder = life.BinderFuncs{}
	}
	if opts.Store == nil {
		return nil, errors.New("session: store is required")
	}
	u, err := life.NewDead(opts.Size)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	r := rng.NewRNG(opts.Seed)
	s := &Session{
		universe: u,
		binder:   opts.Binder,
		rng:      r,
		store:    opts.Store,
		timer:    core.NewFixedStep(opts.TPS),
		state:    StateSplash,
		log:      opts.Log,
	}
	s.stepper = life.NewStepper(tetra.Default(), opts.Binder, r, opts.Log.Named("life"))
	return s, nil
}

// Universe exposes the current universe for read-only presentation.
func (s *Session) Universe() *life.Universe { return s.universe }

// State returns the current application state.
func (s *Session) State() State { return s.state }

// Start leaves the splash screen and begins play.
func (s *Session) Start() {
	if s.state == StateSplash {
		s.setState(StateInGame)
	}
}

// TogglePause switches between playing and paused. From the splash screen it
// starts play.
func (s *Session) TogglePause() State {
	switch s.state {
	case StateInGame:
		s.setState(StatePaused)
	case StatePaused, StateSplash:
		s.setState(StateInGame)
	}
	return s.state
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.log.Debug("state change", zap.Stringer("from", s.state), zap.Stringer("to", next))
	s.state = next
	if next == StateInGame {
		s.timer.Reset()
	}
}

// Tick advances one generation when the session is in game. It reports
// whether a step ran.
func (s *Session) Tick() (life.Report, bool) {
	if s.state != StateInGame {
		return life.Report{}, false
	}
	r := s.stepper.Step(s.universe)
	fields := []zap.Field{
		zap.Stringer("phase", r.Phase),
		zap.Int64("generation", r.Generation),
		zap.Int64("population", r.Population),
		zap.Int("born", r.Born),
		zap.Int("died", r.Died),
	}
	if r.Skipped > 0 {
		s.log.Error("generation skipped cells", append(fields, zap.Int("skipped", r.Skipped))...)
	} else {
		s.log.Debug("generation", fields...)
	}
	return r, true
}

// Update polls the fixed-step gate and ticks when it fires. Frame loops call
// it once per frame.
func (s *Session) Update() (life.Report, bool) {
	if s.state != StateInGame || !s.timer.ShouldStep() {
		return life.Report{}, false
	}
	return s.Tick()
}

// Place toggles one cell and reports whether it is alive afterwards.
func (s *Session) Place(o tetra.Orientation, x, y, z int) (bool, error) {
	alive, err := s.stepper.Place(s.universe, o, x, y, z)
	if err != nil {
		return false, err
	}
	s.log.Debug("cell placed",
		zap.Stringer("orientation", o),
		zap.Int("x", x), zap.Int("y", y), zap.Int("z", z),
		zap.Bool("alive", alive),
		zap.Int64("population", s.universe.Population()))
	return alive, nil
}

// Neighbours counts the live neighbours of a cell.
func (s *Session) Neighbours(o tetra.Orientation, x, y, z int) (int, error) {
	return s.stepper.Neighbours(s.universe, o, x, y, z)
}

// Save writes the universe to the latest and timestamped slots and leaves the
// session paused. A failed write is logged and returned; play state is
// unaffected beyond the pause.
func (s *Session) Save() ([]string, error) {
	s.setState(StateSaveGame)
	defer s.setState(StatePaused)

	paths, err := s.store.Save(s.universe)
	if err != nil {
		s.log.Error("save failed", zap.Error(err), zap.Strings("written", paths))
		return paths, err
	}
	s.log.Info("game saved",
		zap.Strings("paths", paths),
		zap.Int64("generation", s.universe.Generation()),
		zap.Int64("population", s.universe.Population()))
	return paths, nil
}

// Load replaces the universe with a save slot. An empty name loads the
// latest slot. On failure the current universe is kept. Either way the
// session ends up paused, except that a successful load of a slot whose name
// starts with ResumePrefix resumes play.
func (s *Session) Load(name string) error {
	if name == "" {
		name = saves.Latest
	}
	s.setState(StateLoadGame)

	rec, err := s.store.Load(name)
	if err != nil {
		s.log.Error("load failed", zap.String("name", name), zap.Error(err))
		s.setState(StatePaused)
		return err
	}
	if err := s.replace(rec); err != nil {
		s.log.Error("load failed", zap.String("name", name), zap.Error(err))
		s.setState(StatePaused)
		return &saves.LoadError{Name: name, Err: err}
	}
	s.log.Info("game loaded",
		zap.String("name", name),
		zap.Int("size", s.universe.Size()),
		zap.Int64("generation", s.universe.Generation()),
		zap.Int64("population", s.universe.Population()))
	if strings.HasPrefix(name, ResumePrefix) {
		s.setState(StateInGame)
	} else {
		s.setState(StatePaused)
	}
	return nil
}

// LoadPattern replaces the universe with a named pattern at the current size
// and starts play.
func (s *Session) LoadPattern(name string) error {
	rec, err := patterns.Build(name, s.universe.Size(), s.rng)
	if err != nil {
		return err
	}
	if err := s.replace(rec); err != nil {
		return err
	}
	s.log.Info("pattern loaded", zap.String("pattern", name), zap.Int64("population", rec.Counter))
	s.setState(StateInGame)
	return nil
}

// replace swaps in a universe restored from rec. The old universe is only
// released once the new one is fully built.
func (s *Session) replace(rec saves.Record) error {
	u, err := saves.Restore(rec, s.binder)
	if err != nil {
		return err
	}
	if alive := u.CountAlive(); alive != u.Population() {
		s.log.Warn("save counter disagrees with live cells",
			zap.Int64("counter", u.Population()),
			zap.Int64("alive", alive),
			zap.Int64("generation", u.Generation()))
	}
	s.stepper.Release(s.universe)
	s.universe = u
	return nil
}

// NewGame discards the universe for an all-dead one of the same size at
// generation 1 and starts play. The next tick seeds it at random.
func (s *Session) NewGame() error {
	u, err := life.NewDead(s.universe.Size())
	if err != nil {
		return err
	}
	s.stepper.Release(s.universe)
	if sw, ok := s.binder.(sweeper); ok && sw.Live() > 0 {
		s.log.Warn("binder kept objects after release", zap.Int("objects", sw.Live()))
		sw.Clear()
	}
	s.universe = u
	s.log.Info("new game", zap.Int("size", u.Size()), zap.Int64("seed", s.rng.Seed()))
	s.setState(StateInGame)
	return nil
}

// TPS returns the tick rate.
func (s *Session) TPS() int { return s.timer.TPS() }

// Interval returns the duration of one tick at the current rate.
func (s *Session) Interval() time.Duration { return s.timer.Interval() }

// Faster raises the tick rate by one, never above core.MaxTPS.
func (s *Session) Faster() int {
	tps := s.timer.Faster()
	s.log.Debug("speed", zap.Int("tps", tps))
	return tps
}

// Slower lowers the tick rate by one, never below core.MinTPS.
func (s *Session) Slower() int {
	tps := s.timer.Slower()
	s.log.Debug("speed", zap.Int("tps", tps))
	return tps
}
