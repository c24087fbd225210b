package behavior

import (
	"time"

	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

// FoodTextures are the asset ids for one throwable.
type FoodTextures struct {
	Variant string
	Food    string
	Splat   string
}

// AttackConfig holds the spawn and throw timings.
type AttackConfig struct {
	Foods []FoodTextures

	IdleTexture string
	IdleFPS     float64
	IdleFrames  int
	IdleRepeat  int

	SplatFrames int
	SplatFPS    float64

	FoodOffset    float64
	TargetOffset  float64
	ThrowDelay    time.Duration
	ThrowDuration time.Duration
	Cleanup       time.Duration
}

// SniperAttack is the one-shot spawn and throw run after each telegraph.
type SniperAttack struct {
	w        *ecs.World
	clk      *clock.Clock
	rng      common.Random
	group    *clock.Group
	root     ecs.Entity
	sprite   ecs.Entity
	food     ecs.Entity
	player   Player
	bodyGate *Gate
	foodGate *Gate
	cfg      AttackConfig
	current  FoodTextures
	spawns   int
}

func NewSniperAttack(w *ecs.World, clk *clock.Clock, rng common.Random, group *clock.Group, root, sprite, food ecs.Entity, player Player, bodyGate, foodGate *Gate, cfg AttackConfig) (*SniperAttack, error) {
	if len(cfg.Foods) == 0 {
		return nil, ErrEmptyFoodList
	}
	return &SniperAttack{
		w:        w,
		clk:      clk,
		rng:      rng,
		group:    group,
		root:     root,
		sprite:   sprite,
		food:     food,
		player:   player,
		bodyGate: bodyGate,
		foodGate: foodGate,
		cfg:      cfg,
		current:  cfg.Foods[0],
	}, nil
}

// Spawns returns how many attacks were spawned.
func (a *SniperAttack) Spawns() int {
	return a.spawns
}

// Current returns the food picked for the latest attack.
func (a *SniperAttack) Current() FoodTextures {
	return a.current
}

func (a *SniperAttack) facesLeft() bool {
	ox, _, _ := ecs.WorldPosition(a.w, a.root)
	return a.player.LocalX() < ox
}

// Spawn shows the sniper at the player's current x, readies the food and
// schedules the throw.
func (a *SniperAttack) Spawn() {
	if a.player == nil {
		return
	}
	st, ok := ecs.Get(a.w, a.sprite, component.TransformComponent)
	if !ok {
		return
	}
	ss, ok := ecs.Get(a.w, a.sprite, component.SpriteComponent)
	if !ok {
		return
	}
	ft, ok := ecs.Get(a.w, a.food, component.TransformComponent)
	if !ok {
		return
	}
	fs, ok := ecs.Get(a.w, a.food, component.SpriteComponent)
	if !ok {
		return
	}

	px, _ := a.player.WorldPosition()
	ox, _, _ := ecs.WorldPosition(a.w, a.root)
	anchor := px - ox

	a.current = common.Pick(a.rng, a.cfg.Foods)
	a.spawns++
	Stop(a.w, a.food)
	fs.Texture = a.current.Food
	fs.Frame = 0
	fs.Visible = true

	left := a.facesLeft()
	ss.FacingLeft = left
	fs.FacingLeft = left
	ft.X = anchor - a.cfg.FoodOffset
	if left {
		ft.X = anchor + a.cfg.FoodOffset
	}
	ft.Y = 0

	st.X, st.Y = anchor, 0
	ss.Visible = true
	a.bodyGate.Arm(true)

	RegisterAnimation(a.w, a.sprite, a.cfg.IdleTexture, "idle", 0, a.cfg.IdleFrames-1, a.cfg.IdleFPS, a.cfg.IdleRepeat)

	a.group.Track(a.clk.After(a.cfg.ThrowDelay, a.throw))
}

func (a *SniperAttack) throw() {
	if a.player == nil {
		return
	}
	ft, ok := ecs.Get(a.w, a.food, component.TransformComponent)
	if !ok {
		return
	}
	fs, ok := ecs.Get(a.w, a.food, component.SpriteComponent)
	if !ok {
		return
	}
	fs.Visible = true
	a.foodGate.Arm(false)

	pwx, pwy := a.player.WorldPosition()
	ox, oy, _ := ecs.WorldPosition(a.w, a.root)
	targetX := pwx - ox + a.cfg.TargetOffset
	if a.facesLeft() {
		targetX = pwx - ox - a.cfg.TargetOffset
	}
	food := a.current

	a.group.Track(a.clk.Tween(clock.TweenSpec{
		Props: []clock.Prop{
			{Value: &ft.X, To: targetX},
			{Value: &ft.Y, To: pwy - oy},
		},
		Duration: a.cfg.ThrowDuration,
		Ease:     clock.QuadOut,
		OnComplete: func() {
			RegisterAnimation(a.w, a.food, food.Splat, "splat", 0, a.cfg.SplatFrames-1, a.cfg.SplatFPS, 0)
			if ss, ok := ecs.Get(a.w, a.sprite, component.SpriteComponent); ok {
				ss.Visible = false
			}
		},
	}))

	a.group.Track(a.clk.After(a.cfg.Cleanup, func() {
		fs.Visible = false
		a.foodGate.Disarm()
		a.bodyGate.Disarm()
		Stop(a.w, a.food)
		fs.Texture = food.Food
		fs.Frame = 0
	}))
}
