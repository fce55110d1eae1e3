// Package patterns provides named starting records that can be loaded into a
// session or written out as save slots.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"tetralife/internal/saves"
	"tetralife/pkg/core"
)

// ErrUnknown is returned when a pattern name is not registered.
var ErrUnknown = errors.New("patterns: unknown pattern")

// Factory builds a record for a universe of the given size. rng is only
// consulted by randomised patterns.
type Factory func(size int, rng *core.RNG) saves.Record

var registry = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Names returns the registered names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build runs the named factory. A nil rng uses seed 1.
func Build(name string, size int, rng *core.RNG) (saves.Record, error) {
	f, ok := registry[name]
	if !ok {
		return saves.Record{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	if size <= 0 {
		return saves.Record{}, fmt.Errorf("pattern %q: size must be positive, got %d", name, size)
	}
	if rng == nil {
		rng = core.NewRNG(1)
	}
	rec := f(size, rng)
	rec.Counter = rec.Alive()
	return rec, nil
}
