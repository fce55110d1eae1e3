package saves

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tetralife/pkg/core"
	"tetralife/pkg/sims/life"
	"tetralife/pkg/tetra"
)

func counting() (life.Binder, *int) {
	n := 0
	return life.BinderFuncs{SpawnFunc: func(tetra.Orientation, int, int, int) life.Handle {
		n++
		return n
	}}, &n
}

func TestRoundTrip(t *testing.T) {
	u, err := life.NewDead(3)
	require.NoError(t, err)
	s := life.NewStepper(nil, nil, core.NewRNG(11), nil)
	for i := 0; i < 3; i++ {
		s.Step(u)
	}

	data, err := Encode(Snapshot(u))
	require.NoError(t, err)
	rec, err := Decode(data)
	require.NoError(t, err)

	binder, spawned := counting()
	restored, err := Restore(rec, binder)
	require.NoError(t, err)

	if diff := cmp.Diff(Snapshot(u).Life, Snapshot(restored).Life); diff != "" {
		t.Fatalf("pattern changed across save/load (-want +got):\n%s", diff)
	}
	assert.Equal(t, u.Population(), restored.Population())
	assert.Equal(t, u.Generation(), restored.Generation())
	assert.Equal(t, u.Size(), restored.Size())
	assert.Equal(t, int(u.Population()), *spawned)
}

func TestSnapshotLayout(t *testing.T) {
	u, _ := life.NewDead(2)
	u.Set(tetra.DarkBlue, 1, 0, 1, life.Alive(nil))
	u.Restore(1, 4)

	rec := Snapshot(u)
	assert.Equal(t, 1, rec.Life[tetra.DarkBlue][1][0][1])
	assert.Equal(t, int64(1), rec.Alive())
	assert.Equal(t, int64(1), rec.Counter)
	assert.Equal(t, int64(4), rec.Generation)
	assert.Equal(t, 2, rec.UniverseSize)
	require.NoError(t, rec.Validate())
}

func TestEncodeIsReadableYAML(t *testing.T) {
	rec := NewRecord(2)
	rec.Life[tetra.White][0][0][1] = 1
	rec.Counter = 1
	data, err := Encode(rec)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "life: [[[["), "life should be a flow sequence:\n%s", out)
	assert.Contains(t, out, "counter: 1\n")
	assert.Contains(t, out, "generation: 1\n")
	assert.Contains(t, out, "universe_size: 2\n")
}

func TestDecodeRejectsMalformed(t *testing.T) {
	valid, err := Encode(NewRecord(2))
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":       "life: [[[[",
		"empty":         "",
		"unknown field": string(valid) + "colour: blue\n",
		"zero size":     "life: []\ncounter: 0\ngeneration: 1\nuniverse_size: 0\n",
		"short":         "life: [[[[0]]]]\ncounter: 0\ngeneration: 1\nuniverse_size: 1\n",
		"not binary":    strings.Replace(string(valid), "0", "2", 1),
		"text cells":    "life: [[[[x]]]]\ncounter: 0\ngeneration: 1\nuniverse_size: 1\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestValidateRejectsBadCounters(t *testing.T) {
	rec := NewRecord(1)
	rec.Generation = 0
	assert.ErrorIs(t, rec.Validate(), ErrMalformed)

	rec = NewRecord(1)
	rec.Counter = -1
	assert.ErrorIs(t, rec.Validate(), ErrMalformed)
}

func TestRestoreIsAllOrNothing(t *testing.T) {
	rec := NewRecord(2)
	rec.Life[tetra.Red][0][0][0] = 1
	rec.Life[tetra.DarkGrey][1] = rec.Life[tetra.DarkGrey][1][:1]

	binder, spawned := counting()
	u, err := Restore(rec, binder)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Nil(t, u)
	assert.Zero(t, *spawned, "no cell may be spawned from an invalid record")
}

func TestRestoreUsesRecordSize(t *testing.T) {
	rec := NewRecord(4)
	rec.Life[tetra.LightBlue][3][3][3] = 1
	rec.Counter = 1
	rec.Generation = 9

	u, err := Restore(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, u.Size())
	assert.True(t, u.Get(tetra.LightBlue, 3, 3, 3).IsAlive())
	assert.Equal(t, int64(9), u.Generation())
	assert.Equal(t, int64(1), u.Population())
}

func TestRestoreCopiesCounterVerbatim(t *testing.T) {
	rec := NewRecord(3)
	rec.Life[tetra.White][1][1][1] = 1
	rec.Life[tetra.Red][1][1][1] = 1

	u, err := Restore(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Population())
	assert.Equal(t, int64(2), u.CountAlive())
}
