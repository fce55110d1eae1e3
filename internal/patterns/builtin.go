package patterns

import (
	"tetralife/internal/saves"
	"tetralife/pkg/core"
	"tetralife/pkg/tetra"
)

func init() {
	// Past genesis, so the first tick leaves it empty for placing cells by hand.
	Register("empty", func(size int, _ *core.RNG) saves.Record {
		rec := saves.NewRecord(size)
		rec.Generation = 2
		return rec
	})
	// Three tetrahedra sharing the centre cube grow to 36 and then collapse.
	Register("breeding-cube", func(size int, _ *core.RNG) saves.Record {
		return centred(size, tetra.White, tetra.Red, tetra.LightBlue)
	})
	// Two neighbours in one cube die of loneliness on the first steady tick.
	Register("die-off", func(size int, _ *core.RNG) saves.Record {
		return centred(size, tetra.White, tetra.Red)
	})
	Register("full-cube", func(size int, _ *core.RNG) saves.Record {
		return centred(size, tetra.Orientations[:]...)
	})
	Register("soup", func(size int, rng *core.RNG) saves.Record {
		rec := saves.NewRecord(size)
		for o := range rec.Life {
			for x := range rec.Life[o] {
				for y := range rec.Life[o][x] {
					for z := range rec.Life[o][x][y] {
						if rng.Bool() {
							rec.Life[o][x][y][z] = 1
						}
					}
				}
			}
		}
		return rec
	})
}

func centred(size int, os ...tetra.Orientation) saves.Record {
	rec := saves.NewRecord(size)
	c := size / 2
	for _, o := range os {
		rec.Life[o][c][c][c] = 1
	}
	return rec
}
