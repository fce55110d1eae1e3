// Package tetra holds the fixed geometry of the tetrahedral lattice: the six
// orientations that tile a cube and which tetrahedra in neighbouring cubes
// touch each of them.
//
// Each cube is split along its main diagonal into the six Hill tetrahedra.
// Two tetrahedra are neighbours when they share at least an edge. All six
// tetrahedra of a cube share the diagonal, so every one touches the other five
// in its own cube. Across cube boundaries each tetrahedron touches exactly
// thirteen others: two through a face, six through an edge in a cube one axis
// away and five through an edge in a cube two axes away.
package tetra

import "fmt"

// NeighbourCount is the number of cross-cube neighbours per tetrahedron.
const NeighbourCount = 13

// NeighbourCheck names a tetrahedron in a nearby cube: the orientation
// Target in the cube reached by applying Offset.
type NeighbourCheck struct {
	Target Orientation
	Offset Axis
}

// Adjacency ordering: faces first, then single-axis edges, then two-axis
// edges.
var adjacency = [Count][NeighbourCount]NeighbourCheck{
	White: {
		{LightBlue, YNeg},
		{LightGrey, ZPos},
		{DarkGrey, XNeg},
		{Red, YNeg},
		{DarkBlue, YNeg},
		{DarkGrey, ZPos},
		{Red, ZPos},
		{DarkBlue, XPos},
		{LightGrey, XNegYNeg},
		{Red, XNegYNeg},
		{Red, YNegZPos},
		{Red, XPosZPos},
		{LightBlue, XPosZPos},
	},
	Red: {
		{DarkBlue, ZNeg},
		{DarkGrey, YPos},
		{LightGrey, XNeg},
		{LightBlue, ZNeg},
		{White, ZNeg},
		{LightGrey, YPos},
		{White, YPos},
		{LightBlue, XPos},
		{DarkGrey, XNegZNeg},
		{White, XNegZNeg},
		{White, YPosZNeg},
		{White, XPosYPos},
		{DarkBlue, XPosYPos},
	},
	LightBlue: {
		{LightGrey, XNeg},
		{White, YPos},
		{DarkGrey, XNeg},
		{Red, XNeg},
		{DarkBlue, ZNeg},
		{Red, ZPos},
		{DarkGrey, YPos},
		{DarkBlue, YPos},
		{DarkGrey, XNegZNeg},
		{White, XNegZNeg},
		{DarkGrey, XNegYPos},
		{LightGrey, YPosZPos},
		{DarkGrey, YPosZPos},
	},
	DarkBlue: {
		{DarkGrey, XNeg},
		{Red, ZPos},
		{LightGrey, XNeg},
		{White, XNeg},
		{LightBlue, YNeg},
		{LightGrey, ZPos},
		{LightBlue, ZPos},
		{White, YPos},
		{LightGrey, XNegYNeg},
		{Red, XNegYNeg},
		{LightGrey, XNegZPos},
		{LightGrey, YPosZPos},
		{DarkGrey, YPosZPos},
	},
	LightGrey: {
		{White, ZNeg},
		{LightBlue, XPos},
		{Red, YNeg},
		{DarkGrey, ZNeg},
		{DarkBlue, ZNeg},
		{DarkGrey, YPos},
		{Red, XPos},
		{DarkBlue, XPos},
		{LightBlue, YNegZNeg},
		{DarkBlue, YNegZNeg},
		{DarkBlue, XPosZNeg},
		{White, XPosYPos},
		{DarkBlue, XPosYPos},
	},
	DarkGrey: {
		{Red, YNeg},
		{DarkBlue, XPos},
		{LightGrey, YNeg},
		{LightBlue, YNeg},
		{White, ZNeg},
		{LightGrey, ZPos},
		{LightBlue, XPos},
		{White, XPos},
		{LightBlue, YNegZNeg},
		{DarkBlue, YNegZNeg},
		{LightBlue, XPosYNeg},
		{Red, XPosZPos},
		{LightBlue, XPosZPos},
	},
}

// Face and edge counts inside each adjacency list.
const (
	FaceNeighbours     = 2
	AxisNeighbours     = 6
	DiagonalNeighbours = 5
)

// Topology is the validated, immutable neighbour table.
type Topology struct {
	adjacency [Count][NeighbourCount]NeighbourCheck
	sameCube  [Count][Count - 1]Orientation
}

var defaultTopology = mustNew()

// Default returns the shared topology. It is validated at package init.
func Default() *Topology { return defaultTopology }

// New builds and validates a topology.
func New() (*Topology, error) {
	t := &Topology{adjacency: adjacency}
	for _, o := range Orientations {
		i := 0
		for _, other := range Orientations {
			if other == o {
				continue
			}
			t.sameCube[o][i] = other
			i++
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func mustNew() *Topology {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

// Adjacency returns the cross-cube neighbour list for o. ok is false when o
// is not a valid orientation.
func (t *Topology) Adjacency(o Orientation) (checks [NeighbourCount]NeighbourCheck, ok bool) {
	if !o.Valid() {
		return checks, false
	}
	return t.adjacency[o], true
}

// SameCube returns the five other orientations sharing o's cube.
func (t *Topology) SameCube(o Orientation) (others [Count - 1]Orientation, ok bool) {
	if !o.Valid() {
		return others, false
	}
	return t.sameCube[o], true
}

// Validate checks the table's shape and that every adjacency is mutual.
func (t *Topology) Validate() error {
	for _, o := range Orientations {
		faces, axes, diagonals := 0, 0, 0
		for i, check := range t.adjacency[o] {
			if !check.Target.Valid() || !check.Offset.Valid() {
				return fmt.Errorf("tetra: %s entry %d is out of range", o, i)
			}
			switch {
			case i < FaceNeighbours:
				faces++
				if check.Offset.Axes() != 1 {
					return fmt.Errorf("tetra: %s face entry %d crosses %d axes", o, i, check.Offset.Axes())
				}
			case check.Offset.Axes() == 1:
				axes++
			default:
				diagonals++
			}
			if !t.contains(check.Target, NeighbourCheck{Target: o, Offset: check.Offset.Reverse()}) {
				return fmt.Errorf("tetra: %s touches %s at %s but not the reverse", o, check.Target, check.Offset)
			}
		}
		if faces != FaceNeighbours || axes != AxisNeighbours || diagonals != DiagonalNeighbours {
			return fmt.Errorf("tetra: %s has %d/%d/%d face/axis/diagonal neighbours", o, faces, axes, diagonals)
		}
		for _, other := range t.sameCube[o] {
			if other == o || !other.Valid() {
				return fmt.Errorf("tetra: %s same-cube list is invalid", o)
			}
		}
	}
	return nil
}

func (t *Topology) contains(o Orientation, want NeighbourCheck) bool {
	for _, check := range t.adjacency[o] {
		if check == want {
			return true
		}
	}
	return false
}

// Wrap folds v into [0, size) so the lattice has no edges.
func Wrap(v, size int) int {
	return (v%size + size) % size
}

// Resolve applies the check's offset to (x, y, z) and wraps the result.
func Resolve(check NeighbourCheck, x, y, z, size int) (int, int, int) {
	dx, dy, dz := check.Offset.Delta()
	return Wrap(x+dx, size), Wrap(y+dy, size), Wrap(z+dz, size)
}
