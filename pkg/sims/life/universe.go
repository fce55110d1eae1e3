// Package life implements Conway's Game of Life on the tetrahedral lattice
// described by package tetra.
package life

import (
	"errors"
	"fmt"

	"tetralife/pkg/tetra"
)

// ErrInvalidSize is returned when a universe is requested with no cubes.
var ErrInvalidSize = errors.New("life: universe size must be positive")

// Universe stores one cell per (orientation, x, y, z) plus the population and
// generation counters. Cells are laid out orientation-major, then x, y, z.
type Universe struct {
	size       int
	cells      []CellState
	next       []CellState
	population int64
	generation int64
}

// NewDead returns a universe of the given size with every cell dead,
// population 0 and generation 1.
func NewDead(size int) (*Universe, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	total := tetra.Count * size * size * size
	return &Universe{
		size:       size,
		cells:      make([]CellState, total),
		next:       make([]CellState, total),
		generation: 1,
	}, nil
}

// Size returns the lattice extent along each axis.
func (u *Universe) Size() int { return u.size }

// Population returns the number of live cells.
func (u *Universe) Population() int64 { return u.population }

// Generation returns the tick counter. A fresh universe is at generation 1.
func (u *Universe) Generation() int64 { return u.generation }

// Len returns the total number of addressable cells, 6·size³.
func (u *Universe) Len() int { return len(u.cells) }

func (u *Universe) index(o tetra.Orientation, x, y, z int) int {
	return ((int(o)*u.size+x)*u.size+y)*u.size + z
}

// Get returns the state of a cell. Coordinates must already be in [0, size).
func (u *Universe) Get(o tetra.Orientation, x, y, z int) CellState {
	return u.cells[u.index(o, x, y, z)]
}

// Set overwrites a cell without touching the counters.
func (u *Universe) Set(o tetra.Orientation, x, y, z int, c CellState) {
	u.cells[u.index(o, x, y, z)] = c
}

// Restore overwrites the counters, as when rebuilding from a save.
func (u *Universe) Restore(population, generation int64) {
	u.population = population
	u.generation = generation
}

// Each calls fn for every cell in storage order.
func (u *Universe) Each(fn func(o tetra.Orientation, x, y, z int, c CellState)) {
	i := 0
	for _, o := range tetra.Orientations {
		for x := 0; x < u.size; x++ {
			for y := 0; y < u.size; y++ {
				for z := 0; z < u.size; z++ {
					fn(o, x, y, z, u.cells[i])
					i++
				}
			}
		}
	}
}

// CountAlive scans the grid and returns the number of live cells.
func (u *Universe) CountAlive() int64 {
	var n int64
	for _, c := range u.cells {
		if c.alive {
			n++
		}
	}
	return n
}
