package life

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tetralife/pkg/core"
	"tetralife/pkg/tetra"
)

// ErrInvalidOrientation is returned when a cell is addressed with an
// orientation outside the six tetrahedra.
var ErrInvalidOrientation = errors.New("life: invalid orientation")

// Phase identifies which branch of the update a Step took.
type Phase uint8

const (
	// PhaseGenesis seeds generation 1.
	PhaseGenesis Phase = iota
	// PhaseSteady applies the neighbour rule.
	PhaseSteady
	// PhaseDegenerate skips the scan because nothing can be born.
	PhaseDegenerate
)

func (p Phase) String() string {
	switch p {
	case PhaseGenesis:
		return "genesis"
	case PhaseSteady:
		return "steady"
	case PhaseDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Report summarises a single Step.
type Report struct {
	Phase      Phase
	Generation int64
	Population int64
	Born       int
	Died       int
	Skipped    int
}

// Coin supplies the genesis tick's fair coin flips.
type Coin interface {
	Bool() bool
}

// Stepper advances a Universe one generation at a time. It is the only code
// that mutates a universe during play; all presentation side effects go
// through its Binder.
type Stepper struct {
	topology *tetra.Topology
	binder   Binder
	coin     Coin
	log      *zap.Logger

	// neighbourhood looks up an orientation's neighbour lists. ok is false
	// for an orientation the topology does not know.
	neighbourhood func(tetra.Orientation) (checks [tetra.NeighbourCount]tetra.NeighbourCheck, same [tetra.Count - 1]tetra.Orientation, ok bool)
}

// NewStepper wires a stepper. A nil topology uses tetra.Default, a nil binder
// discards lifecycle events, a nil coin uses a fixed-seed RNG and a nil
// logger discards output.
func NewStepper(topology *tetra.Topology, binder Binder, coin Coin, log *zap.Logger) *Stepper {
	if topology == nil {
		topology = tetra.Default()
	}
	if binder == nil {
		binder = BinderFuncs{}
	}
	if coin == nil {
		coin = core.NewRNG(1)
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Stepper{topology: topology, binder: binder, coin: coin, log: log}
	s.neighbourhood = s.lookup
	return s
}

func (s *Stepper) lookup(o tetra.Orientation) (checks [tetra.NeighbourCount]tetra.NeighbourCheck, same [tetra.Count - 1]tetra.Orientation, ok bool) {
	checks, okAdj := s.topology.Adjacency(o)
	same, okSame := s.topology.SameCube(o)
	return checks, same, okAdj && okSame
}

// Step advances u by exactly one generation.
//
// Generation 1 is the genesis tick: cells already alive (loaded or placed by
// hand) are adopted as-is, otherwise every cell flips a fair coin. After
// genesis, live cells with two or three live neighbours survive, dead cells
// with exactly three are born and every other live cell dies.
func (s *Stepper) Step(u *Universe) Report {
	var r Report
	switch {
	case u.generation == 1:
		r = s.genesis(u)
	case u.population > 1:
		r = s.steady(u)
	default:
		r.Phase = PhaseDegenerate
	}
	u.generation++
	r.Generation = u.generation
	r.Population = u.population
	return r
}

func (s *Stepper) genesis(u *Universe) Report {
	r := Report{Phase: PhaseGenesis}
	if alive := u.CountAlive(); alive > 0 {
		u.population = alive
		return r
	}
	i := 0
	for _, o := range tetra.Orientations {
		for x := 0; x < u.size; x++ {
			for y := 0; y < u.size; y++ {
				for z := 0; z < u.size; z++ {
					if s.coin.Bool() {
						u.cells[i] = Alive(s.binder.Spawn(o, x, y, z))
						u.population++
						r.Born++
					}
					i++
				}
			}
		}
	}
	return r
}

func (s *Stepper) steady(u *Universe) Report {
	r := Report{Phase: PhaseSteady}
	last, next := u.cells, u.next
	block := u.size * u.size * u.size
	i := 0
	for _, o := range tetra.Orientations {
		checks, same, ok := s.neighbourhood(o)
		if !ok {
			s.log.Error("orientation missing from topology; cells left unchanged",
				zap.Stringer("orientation", o),
				zap.Int64("generation", u.generation))
			copy(next[i:i+block], last[i:i+block])
			i += block
			r.Skipped += block
			continue
		}
		for x := 0; x < u.size; x++ {
			for y := 0; y < u.size; y++ {
				for z := 0; z < u.size; z++ {
					n := u.countNeighbours(last, &same, &checks, x, y, z)
					cur := last[i]
					switch {
					case cur.alive && (n > 3 || n == 1 || n == 0):
						s.binder.Despawn(cur.handle)
						next[i] = Dead
						u.population--
						r.Died++
					case cur.alive:
						next[i] = cur
					case n == 3:
						next[i] = Alive(s.binder.Spawn(o, x, y, z))
						u.population++
						r.Born++
					default:
						next[i] = Dead
					}
					i++
				}
			}
		}
	}
	u.cells, u.next = next, last
	return r
}

func (u *Universe) countNeighbours(grid []CellState, same *[tetra.Count - 1]tetra.Orientation, checks *[tetra.NeighbourCount]tetra.NeighbourCheck, x, y, z int) int {
	n := 0
	for _, other := range same {
		if grid[u.index(other, x, y, z)].alive {
			n++
		}
	}
	for _, check := range checks {
		nx, ny, nz := tetra.Resolve(check, x, y, z, u.size)
		if grid[u.index(check.Target, nx, ny, nz)].alive {
			n++
		}
	}
	return n
}

// Neighbours counts the live neighbours of a cell in u's current generation.
// Coordinates are wrapped first.
func (s *Stepper) Neighbours(u *Universe, o tetra.Orientation, x, y, z int) (int, error) {
	checks, same, ok := s.neighbourhood(o)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrientation, o)
	}
	x, y, z = tetra.Wrap(x, u.size), tetra.Wrap(y, u.size), tetra.Wrap(z, u.size)
	return u.countNeighbours(u.cells, &same, &checks, x, y, z), nil
}

// Place toggles a single cell outside the generation rule and reports whether
// it is alive afterwards. Coordinates are wrapped first.
func (s *Stepper) Place(u *Universe, o tetra.Orientation, x, y, z int) (bool, error) {
	if !o.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidOrientation, o)
	}
	x, y, z = tetra.Wrap(x, u.size), tetra.Wrap(y, u.size), tetra.Wrap(z, u.size)
	i := u.index(o, x, y, z)
	if cur := u.cells[i]; cur.alive {
		s.binder.Despawn(cur.handle)
		u.cells[i] = Dead
		u.population--
		return false, nil
	}
	u.cells[i] = Alive(s.binder.Spawn(o, x, y, z))
	u.population++
	return true, nil
}

// Release despawns every live cell in u and leaves it empty. Callers use it
// before discarding a universe so the presentation layer drops its objects.
func (s *Stepper) Release(u *Universe) {
	for i, c := range u.cells {
		if c.alive {
			s.binder.Despawn(c.handle)
			u.cells[i] = Dead
		}
	}
	for i := range u.next {
		u.next[i] = Dead
	}
	u.population = 0
}
