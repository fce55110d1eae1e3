package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tetralife/internal/core"
	"tetralife/internal/saves"
	"tetralife/internal/scene"
	"tetralife/pkg/tetra"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	s     *Session
	store *saves.Store
	world *scene.World
	logs  *observer.ObservedLogs
}

func newFixture(t *testing.T, size int) fixture {
	t.Helper()
	obs, logs := observer.New(zap.DebugLevel)
	log := zap.New(obs)
	store := saves.NewStore(filepath.Join(t.TempDir(), "saves"), log)
	world := scene.New(log)
	s, err := New(Options{Size: size, Seed: 7, TPS: 2, Store: store, Binder: world, Log: log})
	require.NoError(t, err)
	return fixture{s: s, store: store, world: world, logs: logs}
}

func (f fixture) assertBound(t *testing.T) {
	t.Helper()
	u := f.s.Universe()
	require.Equal(t, u.CountAlive(), u.Population())
	require.Equal(t, int(u.Population()), f.world.Live())
}

func TestNewSessionStartsOnSplash(t *testing.T) {
	f := newFixture(t, 4)
	assert.Equal(t, StateSplash, f.s.State())
	assert.Equal(t, int64(1), f.s.Universe().Generation())
	assert.Zero(t, f.s.Universe().Population())

	_, ok := f.s.Tick()
	assert.False(t, ok, "splash must not tick")
	assert.Equal(t, int64(1), f.s.Universe().Generation())
}

func TestNewSessionValidates(t *testing.T) {
	_, err := New(Options{Size: 0, Store: saves.NewStore(t.TempDir(), nil)})
	assert.Error(t, err)
	_, err = New(Options{Size: 3})
	assert.Error(t, err)
}

func TestStateTransitions(t *testing.T) {
	f := newFixture(t, 3)
	f.s.Start()
	assert.Equal(t, StateInGame, f.s.State())
	assert.Equal(t, StatePaused, f.s.TogglePause())

	_, ok := f.s.Tick()
	assert.False(t, ok, "paused must not tick")

	assert.Equal(t, StateInGame, f.s.TogglePause())
	_, ok = f.s.Tick()
	assert.True(t, ok)
}

func TestTickKeepsSceneInStep(t *testing.T) {
	f := newFixture(t, 4)
	f.s.Start()
	for i := 0; i < 5; i++ {
		r, ok := f.s.Tick()
		require.True(t, ok)
		require.Equal(t, f.s.Universe().Generation(), r.Generation)
		f.assertBound(t)
	}
	assert.Equal(t, int64(6), f.s.Universe().Generation())
}

func TestSavePausesAndWritesTwoSlots(t *testing.T) {
	f := newFixture(t, 3)
	f.s.Start()
	f.s.Tick()

	paths, err := f.s.Save()
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, StatePaused, f.s.State())

	a, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	b, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSaveFailureIsReported(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	s, err := New(Options{Size: 2, Store: saves.NewStore(filepath.Join(blocker, "saves"), nil)})
	require.NoError(t, err)
	s.Start()

	_, err = s.Save()
	var se *saves.SaveError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StatePaused, s.State())
	assert.Equal(t, int64(1), s.Universe().Generation(), "a failed save leaves the universe alone")
}

func TestFailedLoadKeepsUniverse(t *testing.T) {
	f := newFixture(t, 3)
	f.s.Start()
	f.s.Tick()
	before := f.s.Universe()
	pattern := saves.Snapshot(before).Life
	gen, pop := before.Generation(), before.Population()

	err := f.s.Load("missing")
	var le *saves.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, StatePaused, f.s.State(), "a failed load still completes the transition")
	assert.Same(t, before, f.s.Universe())
	assert.Empty(t, cmp.Diff(pattern, saves.Snapshot(f.s.Universe()).Life))
	assert.Equal(t, gen, f.s.Universe().Generation())
	assert.Equal(t, pop, f.s.Universe().Population())
	assert.Equal(t, 1, f.logs.FilterMessage("load failed").Len())
	f.assertBound(t)
}

func TestLoadLatestRoundTrip(t *testing.T) {
	f := newFixture(t, 4)
	f.s.Start()
	f.s.Tick()
	f.s.Tick()
	_, err := f.s.Save()
	require.NoError(t, err)
	saved := saves.Snapshot(f.s.Universe()).Life
	gen := f.s.Universe().Generation()

	f.s.TogglePause()
	f.s.Tick()
	require.NoError(t, f.s.Load(""))

	assert.Equal(t, StatePaused, f.s.State())
	assert.Equal(t, gen, f.s.Universe().Generation())
	if diff := cmp.Diff(saved, saves.Snapshot(f.s.Universe()).Life); diff != "" {
		t.Fatalf("loaded pattern differs (-saved +loaded):\n%s", diff)
	}
	f.assertBound(t)
}

func TestLoadTestSlotResumes(t *testing.T) {
	f := newFixture(t, 10)
	rec := saves.NewRecord(10)
	rec.Life[tetra.White][4][4][4] = 1
	rec.Life[tetra.Red][4][4][4] = 1
	_, err := f.store.SaveAs("test_die_off", rec)
	require.NoError(t, err)

	require.NoError(t, f.s.Load("test_die_off"))
	assert.Equal(t, StateInGame, f.s.State())
	assert.Equal(t, 1, f.logs.FilterMessage("save counter disagrees with live cells").Len())

	f.s.Tick()
	assert.Equal(t, int64(2), f.s.Universe().Generation())
	assert.Equal(t, int64(2), f.s.Universe().Population())
	f.s.Tick()
	assert.Equal(t, int64(3), f.s.Universe().Generation())
	assert.Equal(t, int64(0), f.s.Universe().Population())
	f.assertBound(t)
}

func TestLoadAdoptsRecordSize(t *testing.T) {
	f := newFixture(t, 3)
	rec := saves.NewRecord(6)
	rec.Life[tetra.DarkBlue][5][5][5] = 1
	rec.Counter = 1
	rec.Generation = 40
	_, err := f.store.SaveAs("big", rec)
	require.NoError(t, err)

	require.NoError(t, f.s.Load("big"))
	assert.Equal(t, StatePaused, f.s.State())
	assert.Equal(t, 6, f.s.Universe().Size())
	assert.Equal(t, int64(40), f.s.Universe().Generation())
	f.assertBound(t)
}

func TestNewGameReleasesOldLife(t *testing.T) {
	f := newFixture(t, 3)
	f.s.Start()
	f.s.Tick()
	require.NotZero(t, f.world.Live())

	require.NoError(t, f.s.NewGame())
	assert.Equal(t, StateInGame, f.s.State())
	assert.Equal(t, int64(1), f.s.Universe().Generation())
	assert.Zero(t, f.world.Live())
	f.assertBound(t)
}

func TestNewGameSweepsStrayObjects(t *testing.T) {
	f := newFixture(t, 3)
	f.world.Spawn(tetra.Red, 0, 0, 0)
	require.Equal(t, 1, f.world.Live())

	require.NoError(t, f.s.NewGame())
	assert.Zero(t, f.world.Live())
	assert.Equal(t, 1, f.logs.FilterMessage("binder kept objects after release").Len())
	f.assertBound(t)
}

func TestEmptyPatternStaysEmpty(t *testing.T) {
	f := newFixture(t, 4)
	require.NoError(t, f.s.LoadPattern("empty"))
	for i := 0; i < 3; i++ {
		r, ok := f.s.Tick()
		require.True(t, ok)
		assert.Zero(t, r.Population)
	}
	assert.Zero(t, f.world.Live())

	_, err := f.s.Place(tetra.White, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.s.Universe().Population())
	f.assertBound(t)
}

func TestLoadPattern(t *testing.T) {
	f := newFixture(t, 10)
	require.NoError(t, f.s.LoadPattern("breeding-cube"))
	assert.Equal(t, StateInGame, f.s.State())

	var got []int64
	for i := 0; i < 6; i++ {
		f.s.Tick()
		got = append(got, f.s.Universe().Population())
		f.assertBound(t)
	}
	assert.Equal(t, []int64{3, 6, 12, 36, 12, 0}, got)

	assert.Error(t, f.s.LoadPattern("nope"))
}

func TestPlaceKeepsInvariant(t *testing.T) {
	f := newFixture(t, 4)
	alive, err := f.s.Place(tetra.Red, 1, 1, 1)
	require.NoError(t, err)
	assert.True(t, alive)
	f.assertBound(t)

	n, err := f.s.Neighbours(tetra.White, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = f.s.Place(tetra.Orientation(7), 0, 0, 0)
	assert.Error(t, err)
}

func TestSpeed(t *testing.T) {
	f := newFixture(t, 2)
	assert.Equal(t, 2, f.s.TPS())
	assert.Equal(t, 3, f.s.Faster())
	f.s.Slower()
	f.s.Slower()
	assert.Equal(t, core.MinTPS, f.s.Slower())

	assert.True(t, f.s.SetIntParameter("tps", 12))
	assert.Equal(t, 12, f.s.TPS())
	assert.False(t, f.s.SetIntParameter("tps", 0))
	assert.False(t, f.s.SetIntParameter("tps", core.MaxTPS+1))
	assert.Equal(t, 12, f.s.TPS())
	assert.True(t, f.s.SetIntParameter("tps", core.MaxTPS))
	assert.Equal(t, core.MaxTPS, f.s.Faster())
	assert.Positive(t, f.s.Interval())
	assert.False(t, f.s.SetIntParameter("size", 4))
}

func TestStatus(t *testing.T) {
	f := newFixture(t, 5)
	st := f.s.Status()
	assert.Equal(t, "Generation: 0000001\nLife detected: 0000000", st.HUD())
	assert.Equal(t, 5, st.Size)
	assert.Equal(t, int64(7), st.Seed)

	p, ok := f.s.Parameters().Lookup("state")
	require.True(t, ok)
	assert.Equal(t, "splash", p.Value)
	require.Len(t, f.s.ParameterControls(), 1)
}
