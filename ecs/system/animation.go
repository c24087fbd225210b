package system

import (
	"time"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

type AnimationSystem struct {
	step time.Duration
}

func NewAnimationSystem(step time.Duration) *AnimationSystem {
	if step <= 0 {
		step = time.Second / 60
	}
	return &AnimationSystem{step: step}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent, component.SpriteComponent, func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FPS <= 0 {
			return
		}
		frameDur := time.Duration(float64(time.Second) / def.FPS)
		count := def.FrameCount()

		anim.Elapsed += a.step
		for anim.Playing && anim.Elapsed >= frameDur {
			anim.Elapsed -= frameDur
			anim.Frame++
			if anim.Frame < count {
				continue
			}
			switch {
			case def.Repeat < 0:
				anim.Frame = 0
			case anim.Plays < def.Repeat:
				anim.Plays++
				anim.Frame = 0
			default:
				anim.Frame = count - 1
				anim.Playing = false
			}
		}

		sprite.Texture = def.Texture
		sprite.Frame = def.StartFrame + anim.Frame
	})
}
