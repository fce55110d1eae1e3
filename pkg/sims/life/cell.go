package life

import "tetralife/pkg/tetra"

// Handle is an opaque reference to the presentation object bound to a live
// cell. The engine stores it and hands it back on despawn; it never inspects
// it.
type Handle any

// CellState is either Alive with a handle or Dead. The zero value is Dead.
type CellState struct {
	handle Handle
	alive  bool
}

// Dead is the state of an empty cell.
var Dead = CellState{}

// Alive returns a live cell bound to h.
func Alive(h Handle) CellState {
	return CellState{handle: h, alive: true}
}

// IsAlive reports whether the cell is alive.
func (c CellState) IsAlive() bool { return c.alive }

// Handle returns the bound handle and whether the cell is alive.
func (c CellState) Handle() (Handle, bool) { return c.handle, c.alive }

// Binder is the presentation layer's side of a cell's lifecycle.
type Binder interface {
	// Spawn creates the visible representation of a newly live cell.
	Spawn(o tetra.Orientation, x, y, z int) Handle
	// Despawn removes the representation bound to h.
	Despawn(h Handle)
}

// BinderFuncs adapts a pair of functions to Binder. Nil functions are
// no-ops; a nil SpawnFunc yields nil handles.
type BinderFuncs struct {
	SpawnFunc   func(o tetra.Orientation, x, y, z int) Handle
	DespawnFunc func(h Handle)
}

// Spawn calls SpawnFunc.
func (b BinderFuncs) Spawn(o tetra.Orientation, x, y, z int) Handle {
	if b.SpawnFunc == nil {
		return nil
	}
	return b.SpawnFunc(o, x, y, z)
}

// Despawn calls DespawnFunc.
func (b BinderFuncs) Despawn(h Handle) {
	if b.DespawnFunc != nil {
		b.DespawnFunc(h)
	}
}
