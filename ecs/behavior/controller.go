// Package behavior scripts the minigame enemies. Everything runs on the
// shared clock from ecs/clock and mutates only the enemy's own entities.
package behavior

import (
	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

// Controller owns one enemy: its entities, its scheduled callbacks and the
// hooks fired on its behalf.
type Controller interface {
	Kind() string
	Root() ecs.Entity
	Start()
	// Teardown cancels every pending callback and destroys the entities.
	Teardown()
	// Defeat fires OnDefeat and tears the enemy down.
	Defeat()
}

// Options are the collaborators shared by every controller.
type Options struct {
	Clock  *clock.Clock
	Random common.Random
	// Player may be nil; every player dependent step then does nothing.
	Player Player
	// Portal is the optional minigame interpreter, read only.
	Portal Interpreter
	Hooks  Hooks
}

func (o Options) withDefaults() (Options, error) {
	if o.Clock == nil {
		return o, ErrNilClock
	}
	if o.Random == nil {
		o.Random = common.NewRandom(0)
	}
	return o, nil
}

// base holds what every controller shares.
type base struct {
	w        *ecs.World
	opts     Options
	kind     string
	group    clock.Group
	root     ecs.Entity
	parts    []ecs.Entity
	torn     bool
	solidFor ecs.Entity
}

func (b *base) Kind() string     { return b.kind }
func (b *base) Root() ecs.Entity { return b.root }

// PortalState returns the interpreter state, or "" without one.
func (b *base) PortalState() string {
	if b.opts.Portal == nil {
		return ""
	}
	return b.opts.Portal.State()
}

// Pending returns the number of callbacks the enemy still owns.
func (b *base) Pending() int {
	return b.group.Active()
}

func (b *base) newRoot(x, y float64, depth int) error {
	b.root = b.w.CreateEntity()
	if err := ecs.Add(b.w, b.root, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	if err := ecs.Add(b.w, b.root, component.EnemyTagComponent, &component.EnemyTag{Kind: b.kind}); err != nil {
		return err
	}
	return ecs.Add(b.w, b.root, component.RenderLayerComponent, &component.RenderLayer{Index: depth})
}

// newPart creates a child of the root at local (x, y).
func (b *base) newPart(x, y float64, sprite component.Sprite, col component.Collider, depth int) (ecs.Entity, error) {
	e := b.w.CreateEntity()
	b.parts = append(b.parts, e)
	if err := ecs.Add(b.w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return e, err
	}
	if err := ecs.Add(b.w, e, component.ParentComponent, &component.Parent{Entity: uint64(b.root)}); err != nil {
		return e, err
	}
	if sprite.Alpha == 0 {
		sprite.Alpha = 1
	}
	if err := ecs.Add(b.w, e, component.SpriteComponent, &sprite); err != nil {
		return e, err
	}
	if err := ecs.Add(b.w, e, component.ColliderComponent, &col); err != nil {
		return e, err
	}
	return e, ecs.Add(b.w, e, component.RenderLayerComponent, &component.RenderLayer{Index: depth})
}

// blockPlayer makes e solid for the player.
func (b *base) blockPlayer(e ecs.Entity) {
	if b.opts.Player == nil {
		return
	}
	pe := b.opts.Player.Entity()
	if !pe.Valid() {
		return
	}
	solid, ok := ecs.Get(b.w, pe, component.SolidComponent)
	if !ok {
		solid = &component.Solid{}
		if err := ecs.Add(b.w, pe, component.SolidComponent, solid); err != nil {
			return
		}
	}
	solid.Against = append(solid.Against, uint64(e))
	b.solidFor = e
}

func (b *base) playerEntity() ecs.Entity {
	if b.opts.Player == nil {
		return 0
	}
	return b.opts.Player.Entity()
}

func (b *base) Teardown() {
	if b.torn {
		return
	}
	b.torn = true
	b.group.Cancel()

	if b.solidFor != 0 {
		if solid, ok := ecs.Get(b.w, b.playerEntity(), component.SolidComponent); ok {
			kept := solid.Against[:0]
			for _, other := range solid.Against {
				if other != uint64(b.solidFor) {
					kept = append(kept, other)
				}
			}
			solid.Against = kept
		}
	}
	for _, e := range b.parts {
		b.w.DestroyEntity(e)
	}
	b.w.DestroyEntity(b.root)
}

func (b *base) Defeat() {
	if b.torn {
		return
	}
	b.opts.Hooks.defeat(b.kind)
	b.Teardown()
}
