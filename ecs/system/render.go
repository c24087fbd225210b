package system

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
	"github.com/milk9111/minigame/ecs/render"
	"golang.org/x/image/colornames"
)

type RenderSystem struct {
	// Debug outlines every collider, red when armed and grey when not.
	Debug  bool
	missed map[string]bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{missed: map[string]bool{}}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	for depth := 0; depth < 8; depth++ {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
			return layer.Index
		}
		p, ok := ecs.Get(w, e, component.ParentComponent)
		if !ok {
			return 0
		}
		e = ecs.Entity(p.Entity)
	}
	return 0
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent, component.SpriteComponent)
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		if !s.Visible {
			continue
		}
		img, err := render.LoadImage(s.Texture, s.Frame)
		if err != nil {
			if !r.missed[s.Texture] {
				r.missed[s.Texture] = true
				log.Printf("render: %v", err)
			}
			continue
		}
		x, y, _ := ecs.WorldPosition(w, e)
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-iw/2-s.OriginX, -ih/2-s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FacingLeft {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(x, y)
		if s.Alpha > 0 {
			op.ColorScale.ScaleAlpha(float32(s.Alpha))
		}

		screen.DrawImage(img, op)
	}

	if r.Debug {
		r.drawColliders(w, screen)
	}
}

func (r *RenderSystem) drawColliders(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.ColliderComponent, func(e ecs.Entity, col *component.Collider) {
		x, y, ok := ecs.WorldPosition(w, e)
		if !ok {
			return
		}
		clr := colornames.Gray
		if col.Enabled {
			clr = colornames.Red
		}
		vector.StrokeRect(screen,
			float32(x+col.OffsetX-col.Width/2), float32(y+col.OffsetY-col.Height/2),
			float32(col.Width), float32(col.Height), 1, clr, false)
	})
}
