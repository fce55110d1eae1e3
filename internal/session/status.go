package session

import (
	"fmt"
	"strconv"

	"tetralife/internal/core"
)

// Status is a point-in-time summary of a session.
type Status struct {
	State      State
	Generation int64
	Population int64
	Size       int
	TPS        int
	Seed       int64
}

// HUD renders the two-line counter display.
func (st Status) HUD() string {
	return fmt.Sprintf("Generation: %07d\nLife detected: %07d", st.Generation, st.Population)
}

// Status returns the session's current counters and settings.
func (s *Session) Status() Status {
	return Status{
		State:      s.state,
		Generation: s.universe.Generation(),
		Population: s.universe.Population(),
		Size:       s.universe.Size(),
		TPS:        s.timer.TPS(),
		Seed:       s.rng.Seed(),
	}
}

// Parameters exposes the status as HUD parameter groups.
func (s *Session) Parameters() core.ParameterSnapshot {
	st := s.Status()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Universe", Params: []core.Parameter{
			core.IntParam("generation", "Generation", st.Generation),
			core.IntParam("population", "Life detected", st.Population),
			core.IntParam("size", "Size", int64(st.Size)),
		}},
		{Name: "Session", Params: []core.Parameter{
			core.TextParam("state", "State", st.State.String()),
			core.IntParam("tps", "Ticks/s", int64(st.TPS)),
			core.TextParam("seed", "Seed", strconv.FormatInt(st.Seed, 10)),
		}},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tps", Label: "Ticks/s", Step: 1, Min: core.MinTPS, Max: core.MaxTPS, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment. Only "tps" is adjustable.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != "tps" || value < core.MinTPS || value > core.MaxTPS {
		return false
	}
	s.timer.SetTPS(value)
	return true
}
