package behavior

import (
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// RegisterAnimation stores a frame range on e under name and starts playing
// it. repeat -1 loops, 0 plays once.
func RegisterAnimation(w *ecs.World, e ecs.Entity, texture, name string, start, end int, fps float64, repeat int) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent)
	if !ok {
		anim = &component.Animation{}
		if err := ecs.Add(w, e, component.AnimationComponent, anim); err != nil {
			return
		}
	}
	if anim.Defs == nil {
		anim.Defs = map[string]component.AnimationDef{}
	}
	anim.Defs[name] = component.AnimationDef{
		Name:       name,
		Texture:    texture,
		StartFrame: start,
		EndFrame:   end,
		FPS:        fps,
		Repeat:     repeat,
	}
	Play(w, e, name)
}

// Play restarts a registered animation from its first frame.
func Play(w *ecs.World, e ecs.Entity, name string) bool {
	anim, ok := ecs.Get(w, e, component.AnimationComponent)
	if !ok {
		return false
	}
	def, ok := anim.Defs[name]
	if !ok {
		return false
	}
	anim.Current = name
	anim.Frame = 0
	anim.Elapsed = 0
	anim.Plays = 0
	anim.Playing = true
	if s, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		s.Texture = def.Texture
		s.Frame = def.StartFrame
	}
	return true
}

// Stop freezes the current animation on its current frame.
func Stop(w *ecs.World, e ecs.Entity) {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
		anim.Playing = false
	}
}
