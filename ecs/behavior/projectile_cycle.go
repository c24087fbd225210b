package behavior

import (
	"time"

	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

// CycleConfig holds the timings of the launch loop.
type CycleConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration

	ThrowDistance float64
	ThrowDuration time.Duration

	DropMin      int
	DropMax      int
	DropDuration time.Duration

	// Reset is measured from launch and does not depend on the tweens.
	Reset time.Duration
}

// ProjectileCycle is the self-perpetuating launch loop of a patroller's
// projectile: Idle, a random wait, Flying, a fixed reset, Idle again.
type ProjectileCycle struct {
	w      *ecs.World
	clk    *clock.Clock
	rng    common.Random
	group  *clock.Group
	e      ecs.Entity
	patrol *Patrol
	gate   *Gate
	cfg    CycleConfig
	flight *clock.Handle
}

func NewProjectileCycle(w *ecs.World, clk *clock.Clock, rng common.Random, group *clock.Group, projectile ecs.Entity, patrol *Patrol, gate *Gate, cfg CycleConfig) *ProjectileCycle {
	return &ProjectileCycle{
		w:      w,
		clk:    clk,
		rng:    rng,
		group:  group,
		e:      projectile,
		patrol: patrol,
		gate:   gate,
		cfg:    cfg,
	}
}

func (c *ProjectileCycle) Start() {
	c.enterIdle()
}

// State returns the current cycle state.
func (c *ProjectileCycle) State() component.ProjectileState {
	p, ok := ecs.Get(c.w, c.e, component.ProjectileComponent)
	if !ok {
		return component.ProjectileIdle
	}
	return p.State
}

func (c *ProjectileCycle) enterIdle() {
	p, ok := ecs.Get(c.w, c.e, component.ProjectileComponent)
	if !ok {
		return
	}
	p.State = component.ProjectileIdle
	p.EnteredAt = c.clk.Now()
	if c.group.Cancelled() {
		return
	}
	ms := c.rng.IntBetween(int(c.cfg.MinDelay/time.Millisecond), int(c.cfg.MaxDelay/time.Millisecond))
	p.NextDelay = time.Duration(ms) * time.Millisecond
	c.group.Track(c.clk.After(p.NextDelay, c.launch))
}

func (c *ProjectileCycle) launch() {
	p, ok := ecs.Get(c.w, c.e, component.ProjectileComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(c.w, c.e, component.TransformComponent)
	if !ok {
		return
	}
	p.State = component.ProjectileScheduled
	c.patrol.SetFollow(false)
	c.gate.Disarm()
	c.gate.Arm(false)

	dir := float64(c.patrol.Direction())
	p.TargetX = t.X + dir*c.cfg.ThrowDistance
	p.TargetY = float64(c.rng.IntBetween(c.cfg.DropMin, c.cfg.DropMax))
	p.InFlight = true
	p.Hit = false
	p.Launches++
	p.State = component.ProjectileFlying
	p.EnteredAt = c.clk.Now()

	c.flight = c.group.Track(c.clk.Tween(clock.TweenSpec{
		Props: []clock.Prop{
			{Value: &t.X, To: p.TargetX, Duration: c.cfg.ThrowDuration, Ease: clock.CubicInOut},
			{Value: &t.Y, To: p.TargetY, Duration: c.cfg.DropDuration, Ease: clock.BounceOut},
		},
	}))
	c.w.Events().Push(ecs.Event{Type: ecs.EventProjectileLaunch, Data: p.Launches})

	c.group.Track(c.clk.After(c.cfg.Reset, c.reset))
}

func (c *ProjectileCycle) reset() {
	p, ok := ecs.Get(c.w, c.e, component.ProjectileComponent)
	if !ok {
		return
	}
	p.State = component.ProjectileReturning
	c.flight.Cancel()
	c.patrol.SnapFollower()
	c.patrol.SetFollow(true)
	if s, ok := ecs.Get(c.w, c.e, component.SpriteComponent); ok {
		s.Visible = true
	}
	c.gate.Disarm()
	p.InFlight = false
	c.enterIdle()
}
