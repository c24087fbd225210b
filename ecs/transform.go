package ecs

import "github.com/milk9111/minigame/ecs/component"

const maxParentDepth = 8

// WorldPosition resolves e's Transform through its Parent chain.
func WorldPosition(w *World, e Entity) (x, y float64, ok bool) {
	for depth := 0; depth < maxParentDepth; depth++ {
		t, has := Get(w, e, component.TransformComponent)
		if !has {
			return x, y, depth > 0
		}
		x += t.X
		y += t.Y
		p, has := Get(w, e, component.ParentComponent)
		if !has || p.Entity == 0 {
			return x, y, true
		}
		e = Entity(p.Entity)
	}
	return x, y, true
}
