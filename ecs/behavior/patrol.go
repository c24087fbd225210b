package behavior

import (
	"time"

	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

// Patrol drives an entity back and forth between the bounds stored in its
// component.Patrol, forever. Every tween update pins the follower (when
// following) and tracks the direction of travel.
type Patrol struct {
	w *ecs.World
	e ecs.Entity
}

func NewPatrol(w *ecs.World, e ecs.Entity) *Patrol {
	return &Patrol{w: w, e: e}
}

// Start places the entity on the left bound and starts the yoyo tween.
// oneWay is the time to travel from one bound to the other.
func (p *Patrol) Start(clk *clock.Clock, group *clock.Group, oneWay time.Duration) {
	state, ok := ecs.Get(p.w, p.e, component.PatrolComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(p.w, p.e, component.TransformComponent)
	if !ok {
		return
	}
	t.X = state.Left
	state.PrevX = t.X
	if state.Direction == 0 {
		state.Direction = 1
	}
	p.Tick()

	group.Track(clk.Tween(clock.TweenSpec{
		Props:    []clock.Prop{{Value: &t.X, To: state.Right}},
		Duration: oneWay,
		Ease:     clock.Linear,
		Yoyo:     true,
		Repeat:   -1,
		OnUpdate: p.Tick,
	}))
}

// Tick runs the per-update work: follow first, then direction.
func (p *Patrol) Tick() {
	t, ok := ecs.Get(p.w, p.e, component.TransformComponent)
	if !ok {
		return
	}
	state, ok := ecs.Get(p.w, p.e, component.PatrolComponent)
	if !ok {
		return
	}
	if state.Follow {
		p.SnapFollower()
	}
	p.Sample(t.X)
}

// Sample feeds the next x position and returns the resulting direction. A
// zero delta keeps the previous direction.
func (p *Patrol) Sample(x float64) int {
	state, ok := ecs.Get(p.w, p.e, component.PatrolComponent)
	if !ok {
		return 0
	}
	dx := x - state.PrevX
	state.PrevX = x
	dir := common.Sign(dx)
	if dir == 0 {
		return state.Direction
	}
	state.Direction = dir
	p.face(dir < 0, p.e)
	if state.Follower != 0 {
		p.face(dir < 0, ecs.Entity(state.Follower))
	}
	return dir
}

func (p *Patrol) face(left bool, e ecs.Entity) {
	if s, ok := ecs.Get(p.w, e, component.SpriteComponent); ok {
		s.FacingLeft = left
	}
}

// SnapFollower moves the follower onto the patroller plus the follow offset.
func (p *Patrol) SnapFollower() {
	state, ok := ecs.Get(p.w, p.e, component.PatrolComponent)
	if !ok || state.Follower == 0 {
		return
	}
	t, ok := ecs.Get(p.w, p.e, component.TransformComponent)
	if !ok {
		return
	}
	ft, ok := ecs.Get(p.w, ecs.Entity(state.Follower), component.TransformComponent)
	if !ok {
		return
	}
	ft.X = t.X
	ft.Y = t.Y + state.FollowOffsetY
}

func (p *Patrol) SetFollow(on bool) {
	if state, ok := ecs.Get(p.w, p.e, component.PatrolComponent); ok {
		state.Follow = on
	}
}

func (p *Patrol) Direction() int {
	state, ok := ecs.Get(p.w, p.e, component.PatrolComponent)
	if !ok {
		return 1
	}
	return state.Direction
}
