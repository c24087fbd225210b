// Package entity builds the minigame's entities from prefabs.
package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/minigame/assets"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
	"github.com/milk9111/minigame/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"player":       addPlayer,
	"input":        addInput,
	"transform":    addTransform,
	"sprite":       addSprite,
	"collider":     addCollider,
	"render_layer": addRenderLayer,
	"animation":    addAnimation,
}

// sprite must precede animation, which reads the sprite's texture.
var componentBuildOrder = []string{
	"player_tag",
	"player",
	"input",
	"transform",
	"sprite",
	"collider",
	"render_layer",
	"animation",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent, t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent, &component.Input{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed < 0 {
		return fmt.Errorf("negative move speed %v", spec.MoveSpeed)
	}
	return ecs.Add(w, e, component.PlayerComponent, &component.Player{MoveSpeed: spec.MoveSpeed})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	tex, err := lookupTexture(spec.Kind, spec.Variant)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Texture:    tex.ID,
		Width:      float64(tex.Width),
		Height:     float64(tex.Height),
		Visible:    !spec.Hidden,
		FacingLeft: spec.FacingLeft,
		Alpha:      spec.Alpha,
	})
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("collider size %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.ColliderComponent, &component.Collider{
		Width:              spec.Width,
		Height:             spec.Height,
		OffsetX:            spec.OffsetX,
		OffsetY:            spec.OffsetY,
		Enabled:            true,
		CollideWorldBounds: true,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.Index})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	tex, err := lookupTexture(spec.Kind, spec.Variant)
	if err != nil {
		return err
	}
	def := component.AnimationDef{
		Name:     spec.Variant,
		Texture:  tex.ID,
		EndFrame: tex.Frames - 1,
		FPS:      spec.FPS,
		Repeat:   spec.Repeat,
	}
	return ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		Defs:    map[string]component.AnimationDef{def.Name: def},
		Current: def.Name,
		Playing: true,
	})
}

func lookupTexture(kind, variant string) (assets.Texture, error) {
	k, err := assets.ParseKind(kind)
	if err != nil {
		return assets.Texture{}, err
	}
	return assets.Lookup(k, variant)
}
