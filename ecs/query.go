package ecs

import (
	"sort"

	"github.com/milk9111/magnetgun/ecs/component"
)

// Query returns the live entities that carry every given component kind, in
// ascending entity order so system iteration is deterministic.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil || s.len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].len() < sets[j].len() })

	out := make([]Entity, 0, sets[0].len())
	for _, e := range sets[0].entities() {
		if !w.IsAlive(e) {
			continue
		}
		match := true
		for _, s := range sets[1:] {
			if !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest live entity carrying the component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Count returns how many live entities carry the component kind.
func (w *World) Count(kind component.Kind) int {
	return len(w.Query(kind))
}
