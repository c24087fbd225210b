package system

import (
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// PlayerControlSystem moves the player from its Input. Speed is in pixels
// per second at a fixed tick rate.
type PlayerControlSystem struct {
	tps float64
}

func NewPlayerControlSystem(tps float64) *PlayerControlSystem {
	if tps <= 0 {
		tps = 60
	}
	return &PlayerControlSystem{tps: tps}
}

func (p *PlayerControlSystem) Update(w *ecs.World) {
	for _, e := range w.Query(component.PlayerComponent, component.InputComponent, component.TransformComponent) {
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)

		t.X += input.MoveX * player.MoveSpeed / p.tps
		t.Y += input.MoveY * player.MoveSpeed / p.tps

		if s, ok := ecs.Get(w, e, component.SpriteComponent); ok && input.MoveX != 0 {
			s.FacingLeft = input.MoveX < 0
		}
	}
}
