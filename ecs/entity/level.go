package entity

import (
	"fmt"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/behavior"
	"github.com/milk9111/minigame/ecs/component"
	"github.com/milk9111/minigame/prefabs"
)

// Arena is everything LoadArena put in the world.
type Arena struct {
	Bounds  ecs.Entity
	Player  ecs.Entity
	Enemies []behavior.Controller
}

// Teardown stops every enemy and destroys the arena's entities.
func (a *Arena) Teardown(w *ecs.World) {
	for _, c := range a.Enemies {
		c.Teardown()
	}
	a.Enemies = nil
	ecs.DestroyEntity(w, a.Player)
	ecs.DestroyEntity(w, a.Bounds)
}

// LoadArena builds the bounds, the player and every enemy of spec. Enemies
// are started. When opts.Player is nil the tagged player entity is used.
func LoadArena(w *ecs.World, spec *prefabs.GameSpec, opts behavior.Options) (*Arena, error) {
	a := &Arena{Bounds: ecs.CreateEntity(w)}
	if err := ecs.Add(w, a.Bounds, component.LevelBoundsComponent, &component.LevelBounds{
		X:      spec.Bounds.X,
		Y:      spec.Bounds.Y,
		Width:  spec.Bounds.Width,
		Height: spec.Bounds.Height,
	}); err != nil {
		return nil, fmt.Errorf("arena: add bounds: %w", err)
	}

	player, err := NewPlayerAt(w, spec.Player, spec.Spawn.X, spec.Spawn.Y)
	if err != nil {
		ecs.DestroyEntity(w, a.Bounds)
		return nil, fmt.Errorf("arena: %w", err)
	}
	a.Player = player
	if opts.Player == nil {
		if p := behavior.FindPlayer(w); p != nil {
			opts.Player = p
		}
	}

	for i, s := range spec.Enemies {
		ctrl, err := NewEnemy(w, s.Kind, s.X, s.Y, opts)
		if err != nil {
			a.Teardown(w)
			return nil, fmt.Errorf("arena: enemy %d: %w", i, err)
		}
		a.Enemies = append(a.Enemies, ctrl)
	}
	return a, nil
}
