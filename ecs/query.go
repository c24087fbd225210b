package ecs

import (
	"sort"

	"github.com/milk9111/minigame/ecs/component"
)

// Query returns the entities that own every listed component, in creation
// order so systems iterate deterministically.
func (w *World) Query(keys ...component.Key) []Entity {
	if w == nil || len(keys) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(keys))
	for _, k := range keys {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		hasAll := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				hasAll = false
				break
			}
		}
		if hasAll {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the first entity owning every listed component.
func (w *World) First(keys ...component.Key) (Entity, bool) {
	ents := w.Query(keys...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
