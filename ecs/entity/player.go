package entity

import (
	"fmt"

	"github.com/milk9111/minigame/ecs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

func NewPlayerAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	if prefab == "" {
		prefab = "player.yaml"
	}
	entity, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y, 0); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
