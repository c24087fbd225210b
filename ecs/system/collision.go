package system

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// CollisionSystem keeps colliders inside the level, pushes entities out of
// their solids and fires overlap triggers. Disabled colliders are skipped by
// every pass.
type CollisionSystem struct {
	world *collisionWorld
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{world: newCollisionWorld()}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	cw := s.world
	cw.prune(w)

	ecs.ForEach(w, component.ColliderComponent, func(e ecs.Entity, col *component.Collider) {
		if pb := cw.ensure(w, e, col); pb != nil {
			cw.place(w, e, col, pb)
		}
	})

	s.clampToBounds(w)
	s.resolveSolids(w)
	s.fireOverlaps(w)
}

func enabledCollider(w *ecs.World, e ecs.Entity) (*component.Collider, *component.PhysicsBody, bool) {
	col, ok := ecs.Get(w, e, component.ColliderComponent)
	if !ok || !col.Enabled {
		return nil, nil, false
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || pb.Shape == nil {
		return nil, nil, false
	}
	return col, pb, true
}

// shift moves e's transform by (dx, dy) and re-places its body.
func (s *CollisionSystem) shift(w *ecs.World, e ecs.Entity, col *component.Collider, pb *component.PhysicsBody, dx, dy float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	t.X += dx
	t.Y += dy
	s.world.place(w, e, col, pb)
}

func (s *CollisionSystem) clampToBounds(w *ecs.World) {
	be, ok := w.First(component.LevelBoundsComponent)
	if !ok {
		return
	}
	lb, _ := ecs.Get(w, be, component.LevelBoundsComponent)

	ecs.ForEach(w, component.ColliderComponent, func(e ecs.Entity, _ *component.Collider) {
		col, pb, ok := enabledCollider(w, e)
		if !ok || !col.CollideWorldBounds {
			return
		}
		hw, hh := col.Width/2, col.Height/2
		inner := cp.BB{
			L: lb.X + hw,
			B: lb.Y + hh,
			R: lb.X + lb.Width - hw,
			T: lb.Y + lb.Height - hh,
		}
		if inner.L > inner.R || inner.B > inner.T {
			return
		}
		centre := pb.Body.Position()
		x := common.Clamp(centre.X, inner.L, inner.R)
		y := common.Clamp(centre.Y, inner.B, inner.T)
		if x != centre.X || y != centre.Y {
			s.shift(w, e, col, pb, x-centre.X, y-centre.Y)
		}
	})
}

func (s *CollisionSystem) resolveSolids(w *ecs.World) {
	ecs.ForEach(w, component.SolidComponent, func(e ecs.Entity, solid *component.Solid) {
		col, pb, ok := enabledCollider(w, e)
		if !ok || len(solid.Against) == 0 {
			return
		}
		var blockers []*cp.Shape
		s.world.query(pb.Shape.BB(), func(other ecs.Entity, shape *cp.Shape) {
			if other == e || !contains(solid.Against, uint64(other)) {
				return
			}
			if _, _, ok := enabledCollider(w, other); ok {
				blockers = append(blockers, shape)
			}
		})
		for _, shape := range blockers {
			dx, dy := pushOut(pb.Shape.BB(), shape.BB())
			if dx != 0 || dy != 0 {
				s.shift(w, e, col, pb, dx, dy)
			}
		}
	})
}

// pushOut returns the smallest move taking a out of b.
func pushOut(a, b cp.BB) (float64, float64) {
	if !a.Intersects(b) {
		return 0, 0
	}
	left := b.L - a.R
	right := b.R - a.L
	up := b.B - a.T
	down := b.T - a.B

	dx := left
	if math.Abs(right) < math.Abs(left) {
		dx = right
	}
	dy := up
	if math.Abs(down) < math.Abs(up) {
		dy = down
	}
	if math.Abs(dx) <= math.Abs(dy) {
		return dx, 0
	}
	return 0, dy
}

func (s *CollisionSystem) fireOverlaps(w *ecs.World) {
	var fire []func()
	ecs.ForEach(w, component.OverlapComponent, func(e ecs.Entity, ov *component.Overlap) {
		_, pb, selfOK := enabledCollider(w, e)
		for _, trig := range ov.Triggers {
			if !selfOK {
				trig.Touching = false
				continue
			}
			_, other, ok := enabledCollider(w, ecs.Entity(trig.Other))
			if !ok || !w.IsAlive(ecs.Entity(trig.Other)) {
				trig.Touching = false
				continue
			}
			touching := pb.Shape.BB().Intersects(other.Shape.BB())
			if touching && !trig.Touching && trig.OnOverlap != nil {
				fire = append(fire, trig.OnOverlap)
			}
			trig.Touching = touching
		}
	})
	for _, fn := range fire {
		fn()
	}
}

func contains(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
