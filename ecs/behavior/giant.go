package behavior

import (
	"fmt"
	"time"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// GiantConfig is everything needed to build a giant.
type GiantConfig struct {
	Kind          string
	IdleTexture   string
	BarrelTexture string
	IdleFrames    int
	IdleFPS       float64
	IdleRepeat    int

	Width        float64
	Height       float64
	BarrelWidth  float64
	BarrelHeight float64
	Depth        int

	// PatrolLeft and PatrolRight are offsets from the spawn x.
	PatrolLeft     float64
	PatrolRight    float64
	PatrolDuration time.Duration
	FollowOffsetY  float64

	Cycle CycleConfig
}

// Giant patrols forever and throws its barrel on a random delay.
type Giant struct {
	base
	cfg    GiantConfig
	sprite ecs.Entity
	barrel ecs.Entity
	patrol *Patrol
	gate   *Gate
	cycle  *ProjectileCycle
}

var _ Controller = (*Giant)(nil)

func NewGiant(w *ecs.World, x, y float64, cfg GiantConfig, opts Options) (*Giant, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	g := &Giant{base: base{w: w, opts: opts, kind: cfg.Kind}, cfg: cfg}
	if err := g.build(x, y); err != nil {
		g.Teardown()
		return nil, fmt.Errorf("behavior: build %s: %w", cfg.Kind, err)
	}
	return g, nil
}

func (g *Giant) build(x, y float64) error {
	cfg := g.cfg
	if err := g.newRoot(x, y, cfg.Depth); err != nil {
		return err
	}

	var err error
	g.sprite, err = g.newPart(0, 0,
		component.Sprite{Texture: cfg.IdleTexture, Width: cfg.Width, Height: cfg.Height, Visible: true},
		component.Collider{Width: cfg.Width, Height: cfg.Height, Enabled: true, CollideWorldBounds: true, Immovable: true},
		cfg.Depth)
	if err != nil {
		return err
	}
	g.barrel, err = g.newPart(0, cfg.FollowOffsetY,
		component.Sprite{Texture: cfg.BarrelTexture, Width: cfg.BarrelWidth, Height: cfg.BarrelHeight, Visible: true},
		component.Collider{Width: cfg.BarrelWidth, Height: cfg.BarrelHeight},
		cfg.Depth)
	if err != nil {
		return err
	}
	if err := ecs.Add(g.w, g.barrel, component.ProjectileComponent, &component.Projectile{}); err != nil {
		return err
	}
	if err := ecs.Add(g.w, g.barrel, component.ProjectileTagComponent, &component.ProjectileTag{}); err != nil {
		return err
	}
	if err := ecs.Add(g.w, g.sprite, component.PatrolComponent, &component.Patrol{
		Left:          cfg.PatrolLeft,
		Right:         cfg.PatrolRight,
		Direction:     1,
		Follow:        true,
		Follower:      uint64(g.barrel),
		FollowOffsetY: cfg.FollowOffsetY,
	}); err != nil {
		return err
	}

	RegisterAnimation(g.w, g.sprite, cfg.IdleTexture, "idle", 0, cfg.IdleFrames-1, cfg.IdleFPS, cfg.IdleRepeat)

	g.patrol = NewPatrol(g.w, g.sprite)
	g.gate = NewGate(g.w, g.opts.Clock, g.barrel, cfg.Kind, g.opts.Hooks)
	g.cycle = NewProjectileCycle(g.w, g.opts.Clock, g.opts.Random, &g.group, g.barrel, g.patrol, g.gate, cfg.Cycle)

	g.blockPlayer(g.sprite)
	g.gate.Watch(g.playerEntity())
	return nil
}

func (g *Giant) Start() {
	if g.torn {
		return
	}
	g.patrol.Start(g.opts.Clock, &g.group, g.cfg.PatrolDuration)
	g.cycle.Start()
}

func (g *Giant) Sprite() ecs.Entity               { return g.sprite }
func (g *Giant) Barrel() ecs.Entity               { return g.barrel }
func (g *Giant) Gate() *Gate                      { return g.gate }
func (g *Giant) Patrol() *Patrol                  { return g.patrol }
func (g *Giant) State() component.ProjectileState { return g.cycle.State() }
