package core

import (
	"tetralife/pkg/sims/life"
	"tetralife/pkg/tetra"
)

// Tile dimensions of one cube in a slice: the six orientations are laid out
// three across and two down.
const (
	TileW = 3
	TileH = 2
)

// TileOffset returns the position of an orientation inside its cube's tile.
func TileOffset(o tetra.Orientation) (dx, dy int) {
	return int(o) % TileW, int(o) / TileW
}

// Slice is a flattened 2D view of one z layer of a universe, stored in
// row-major order. A cell value is 0 when dead and 1+orientation when alive,
// so the value doubles as a palette index.
type Slice struct {
	W, H int
	Z    int
	size int
	data []uint8
}

// NewSlice allocates a view for a universe of the given size.
func NewSlice(size int) *Slice {
	if size <= 0 {
		size = 1
	}
	return &Slice{W: size * TileW, H: size * TileH, size: size, data: make([]uint8, size*size*tetra.Count)}
}

// Size returns the universe extent the slice was allocated for.
func (s *Slice) Size() int { return s.size }

// Cells exposes the backing slice so painters can read values directly.
func (s *Slice) Cells() []uint8 { return s.data }

// Index returns the linear index for view coordinates (px, py).
func (s *Slice) Index(px, py int) int { return py*s.W + px }

// At returns the value at view coordinates (px, py).
func (s *Slice) At(px, py int) uint8 { return s.data[s.Index(px, py)] }

// Capture copies layer z of u into the view. z is wrapped into range.
func (s *Slice) Capture(u *life.Universe, z int) {
	if u.Size() != s.size {
		*s = *NewSlice(u.Size())
	}
	s.Z = tetra.Wrap(z, s.size)
	for _, o := range tetra.Orientations {
		dx, dy := TileOffset(o)
		for x := 0; x < s.size; x++ {
			for y := 0; y < s.size; y++ {
				v := uint8(0)
				if u.Get(o, x, y, s.Z).IsAlive() {
					v = 1 + uint8(o)
				}
				s.data[s.Index(x*TileW+dx, y*TileH+dy)] = v
			}
		}
	}
}

// Locate maps view coordinates back to the cell they show.
func (s *Slice) Locate(px, py int) (o tetra.Orientation, x, y int, ok bool) {
	if px < 0 || py < 0 || px >= s.W || py >= s.H {
		return 0, 0, 0, false
	}
	o = tetra.Orientation((py%TileH)*TileW + px%TileW)
	return o, px / TileW, py / TileH, true
}

// Point maps a cell to its view coordinates.
func (s *Slice) Point(o tetra.Orientation, x, y int) (px, py int) {
	dx, dy := TileOffset(o)
	return tetra.Wrap(x, s.size)*TileW + dx, tetra.Wrap(y, s.size)*TileH + dy
}

// Clear fills the view with dead cells.
func (s *Slice) Clear() {
	for i := range s.data {
		s.data[i] = 0
	}
}
