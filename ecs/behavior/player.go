package behavior

import (
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// Player is the read-only view enemies have of the player.
type Player interface {
	// LocalX is the player's x in its parent's space.
	LocalX() float64
	WorldPosition() (x, y float64)
	// Entity is the entity overlap triggers are registered against. The
	// zero Entity disables collision wiring.
	Entity() ecs.Entity
}

// Interpreter is the optional minigame state machine. Enemies only read it.
type Interpreter interface {
	State() string
}

// EntityPlayer reads the player straight from its components.
type EntityPlayer struct {
	World *ecs.World
	E     ecs.Entity
}

// FindPlayer returns the first entity tagged as the player, or nil.
func FindPlayer(w *ecs.World) *EntityPlayer {
	e, ok := w.First(component.PlayerTagComponent, component.TransformComponent)
	if !ok {
		return nil
	}
	return &EntityPlayer{World: w, E: e}
}

func (p *EntityPlayer) LocalX() float64 {
	t, ok := ecs.Get(p.World, p.E, component.TransformComponent)
	if !ok {
		return 0
	}
	return t.X
}

func (p *EntityPlayer) WorldPosition() (float64, float64) {
	x, y, _ := ecs.WorldPosition(p.World, p.E)
	return x, y
}

func (p *EntityPlayer) Entity() ecs.Entity {
	return p.E
}
