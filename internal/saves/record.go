// Package saves persists universes as human-readable YAML records.
package saves

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"tetralife/pkg/sims/life"
	"tetralife/pkg/tetra"
)

// ErrMalformed reports a record whose shape or values do not describe a
// universe.
var ErrMalformed = errors.New("saves: malformed record")

// Record is the on-disk form of a universe. Life is indexed
// [orientation][x][y][z] and holds 0 (dead) or 1 (alive).
type Record struct {
	Life         [][][][]int `yaml:"life,flow"`
	Counter      int64       `yaml:"counter"`
	Generation   int64       `yaml:"generation"`
	UniverseSize int         `yaml:"universe_size"`
}

// NewRecord returns an all-dead record of the given size.
func NewRecord(size int) Record {
	rec := Record{Generation: 1, UniverseSize: size, Life: make([][][][]int, tetra.Count)}
	for o := range rec.Life {
		rec.Life[o] = make([][][]int, size)
		for x := range rec.Life[o] {
			rec.Life[o][x] = make([][]int, size)
			for y := range rec.Life[o][x] {
				rec.Life[o][x][y] = make([]int, size)
			}
		}
	}
	return rec
}

// Snapshot captures u's live/dead pattern and counters.
func Snapshot(u *life.Universe) Record {
	rec := NewRecord(u.Size())
	u.Each(func(o tetra.Orientation, x, y, z int, c life.CellState) {
		if c.IsAlive() {
			rec.Life[o][x][y][z] = 1
		}
	})
	rec.Counter = u.Population()
	rec.Generation = u.Generation()
	return rec
}

// Alive counts the cells marked 1.
func (r Record) Alive() int64 {
	var n int64
	for _, plane := range r.Life {
		for _, row := range plane {
			for _, col := range row {
				for _, v := range col {
					if v == 1 {
						n++
					}
				}
			}
		}
	}
	return n
}

// Validate checks that the record describes a 6×size×size×size grid of 0/1
// values with a usable generation counter.
func (r Record) Validate() error {
	size := r.UniverseSize
	if size <= 0 {
		return fmt.Errorf("%w: universe_size %d", ErrMalformed, size)
	}
	if r.Generation < 1 {
		return fmt.Errorf("%w: generation %d", ErrMalformed, r.Generation)
	}
	if r.Counter < 0 {
		return fmt.Errorf("%w: counter %d", ErrMalformed, r.Counter)
	}
	if len(r.Life) != tetra.Count {
		return fmt.Errorf("%w: %d orientations, want %d", ErrMalformed, len(r.Life), tetra.Count)
	}
	for o, plane := range r.Life {
		if len(plane) != size {
			return fmt.Errorf("%w: orientation %d has %d x-rows, want %d", ErrMalformed, o, len(plane), size)
		}
		for x, row := range plane {
			if len(row) != size {
				return fmt.Errorf("%w: [%d][%d] has %d y-rows, want %d", ErrMalformed, o, x, len(row), size)
			}
			for y, col := range row {
				if len(col) != size {
					return fmt.Errorf("%w: [%d][%d][%d] has %d cells, want %d", ErrMalformed, o, x, y, len(col), size)
				}
				for z, v := range col {
					if v != 0 && v != 1 {
						return fmt.Errorf("%w: [%d][%d][%d][%d] = %d", ErrMalformed, o, x, y, z, v)
					}
				}
			}
		}
	}
	return nil
}

// Encode renders the record as YAML.
func Encode(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses and validates a YAML record. Unknown keys are rejected.
func Decode(data []byte) (Record, error) {
	var r Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Restore builds a new universe from the record, spawning every live cell
// through binder. The record is validated before any cell is spawned, so a
// failure has no side effects. Counters are copied verbatim.
func Restore(r Record, binder life.Binder) (*life.Universe, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if binder == nil {
		binder = life.BinderFuncs{}
	}
	u, err := life.NewDead(r.UniverseSize)
	if err != nil {
		return nil, err
	}
	for _, o := range tetra.Orientations {
		for x, row := range r.Life[o] {
			for y, col := range row {
				for z, v := range col {
					if v == 1 {
						u.Set(o, x, y, z, life.Alive(binder.Spawn(o, x, y, z)))
					}
				}
			}
		}
	}
	u.Restore(r.Counter, r.Generation)
	return u, nil
}
