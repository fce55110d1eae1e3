// Package scene keeps one ECS entity per live cell. It is the presentation
// side of the engine's spawn/despawn lifecycle: the GUI and the CLI read
// entities from here instead of scanning the universe.
package scene

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"tetralife/internal/logging"
	"tetralife/pkg/sims/life"
	"tetralife/pkg/tetra"
)

// LifeForm is the lattice position of a live cell.
type LifeForm struct {
	Orientation tetra.Orientation
	X, Y, Z     int
}

// Appearance is how a live cell is drawn.
type Appearance struct {
	Colour   color.RGBA
	Mirrored bool
}

// Palette holds one colour per orientation.
var Palette = [tetra.Count]color.RGBA{
	tetra.White:     {R: 0, G: 255, B: 0, A: 255},
	tetra.Red:       {R: 153, G: 51, B: 51, A: 255},
	tetra.LightBlue: {R: 128, G: 128, B: 255, A: 255},
	tetra.DarkBlue:  {R: 26, G: 26, B: 178, A: 255},
	tetra.LightGrey: {R: 255, G: 255, B: 0, A: 255},
	tetra.DarkGrey:  {R: 51, G: 51, B: 51, A: 255},
}

// AppearanceOf returns the appearance of a cell with orientation o.
func AppearanceOf(o tetra.Orientation) Appearance {
	if !o.Valid() {
		return Appearance{Colour: color.RGBA{R: 255, G: 0, B: 255, A: 255}}
	}
	return Appearance{Colour: Palette[o], Mirrored: o.Mirrored()}
}

// World is an ark ECS world implementing life.Binder. Handles it returns are
// ecs.Entity values.
type World struct {
	world   ecs.World
	spawner *ecs.Map2[LifeForm, Appearance]
	forms   *ecs.Filter2[LifeForm, Appearance]
	live    int
	log     *zap.Logger
}

var _ life.Binder = (*World)(nil)

// New creates an empty world. A nil logger discards output.
func New(log *zap.Logger) *World {
	w := &World{world: ecs.NewWorld(), log: logging.OrNop(log)}
	w.spawner = ecs.NewMap2[LifeForm, Appearance](&w.world)
	w.forms = ecs.NewFilter2[LifeForm, Appearance](&w.world)
	return w
}

// Spawn creates an entity for a newly live cell.
func (w *World) Spawn(o tetra.Orientation, x, y, z int) life.Handle {
	form := LifeForm{Orientation: o, X: x, Y: y, Z: z}
	look := AppearanceOf(o)
	e := w.spawner.NewEntity(&form, &look)
	w.live++
	return e
}

// Despawn removes the entity bound to h. Handles that are not live entities
// of this world are logged and ignored.
func (w *World) Despawn(h life.Handle) {
	e, ok := h.(ecs.Entity)
	if !ok || !w.world.Alive(e) {
		w.log.Warn("despawn of unknown life form", zap.Any("handle", h))
		return
	}
	w.world.RemoveEntity(e)
	w.live--
}

// Live returns the number of entities.
func (w *World) Live() int { return w.live }

// Each calls fn for every entity.
func (w *World) Each(fn func(LifeForm, Appearance)) {
	query := w.forms.Query()
	for query.Next() {
		form, look := query.Get()
		fn(*form, *look)
	}
}

// Census counts live entities per orientation.
func (w *World) Census() [tetra.Count]int {
	var out [tetra.Count]int
	w.Each(func(f LifeForm, _ Appearance) {
		if f.Orientation.Valid() {
			out[f.Orientation]++
		}
	})
	return out
}

// Clear removes every entity.
func (w *World) Clear() {
	var doomed []ecs.Entity
	query := w.forms.Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	for _, e := range doomed {
		w.world.RemoveEntity(e)
	}
	w.live = 0
}
