package behavior

import (
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

// Gate is the armed flag of one collider. It is separate from visibility:
// a visible projectile may be disarmed and the collision system ignores
// disarmed colliders entirely.
type Gate struct {
	w      *ecs.World
	clk    *clock.Clock
	e      ecs.Entity
	kind   string
	hooks  Hooks
	linked []*Gate
	hits   int
	onHit  func()
}

func NewGate(w *ecs.World, clk *clock.Clock, e ecs.Entity, kind string, hooks Hooks) *Gate {
	return &Gate{w: w, clk: clk, e: e, kind: kind, hooks: hooks}
}

// Link makes a hit on g also disarm others.
func (g *Gate) Link(others ...*Gate) {
	g.linked = append(g.linked, others...)
}

// OnHit registers a callback run after a hit has been consumed.
func (g *Gate) OnHit(fn func()) {
	g.onHit = fn
}

// Arm enables detection. worldBounds sets whether the collider is clipped
// to the level bounds while armed.
func (g *Gate) Arm(worldBounds bool) {
	col, ok := ecs.Get(g.w, g.e, component.ColliderComponent)
	if !ok {
		return
	}
	col.Enabled = true
	col.CollideWorldBounds = worldBounds
}

// Disarm disables detection. Calling it again is a no-op.
func (g *Gate) Disarm() {
	col, ok := ecs.Get(g.w, g.e, component.ColliderComponent)
	if !ok || !col.Enabled {
		return
	}
	col.Enabled = false
}

func (g *Gate) Armed() bool {
	col, ok := ecs.Get(g.w, g.e, component.ColliderComponent)
	return ok && col.Enabled
}

// Hits returns how many overlaps the gate consumed.
func (g *Gate) Hits() int {
	return g.hits
}

// Hit is the overlap callback. An armed gate hides its entity, disarms
// itself and its linked gates, then fires the hooks. A disarmed gate
// ignores the call, so one flight can never hit twice.
func (g *Gate) Hit() {
	if !g.Armed() {
		return
	}
	g.hits++
	if s, ok := ecs.Get(g.w, g.e, component.SpriteComponent); ok {
		s.Visible = false
	}
	g.Disarm()
	for _, other := range g.linked {
		other.Disarm()
	}

	info := HitInfo{Kind: g.kind, At: g.clk.Now()}
	if p, ok := ecs.Get(g.w, g.e, component.ProjectileComponent); ok {
		p.Hit = true
		info.Launch = p.Launches
	}
	g.w.Events().Push(ecs.Event{Type: ecs.EventProjectileHit, Data: info})
	if g.onHit != nil {
		g.onHit()
	}
	g.hooks.hit(info)
}

// Watch registers g.Hit as an overlap trigger between the gate's entity and
// other. A zero other is ignored.
func (g *Gate) Watch(other ecs.Entity) {
	if !other.Valid() {
		return
	}
	ov, ok := ecs.Get(g.w, g.e, component.OverlapComponent)
	if !ok {
		ov = &component.Overlap{}
		if err := ecs.Add(g.w, g.e, component.OverlapComponent, ov); err != nil {
			return
		}
	}
	ov.Triggers = append(ov.Triggers, &component.OverlapTrigger{Other: uint64(other), OnOverlap: g.Hit})
}
