package behavior

import (
	"fmt"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// SniperConfig is everything needed to build a sniper.
type SniperConfig struct {
	Kind   string
	Width  float64
	Height float64
	Depth  int

	FoodWidth  float64
	FoodHeight float64

	Telegraph TelegraphConfig
	Attack    AttackConfig
}

// Sniper hides until its telegraph fires, then appears at the player's x and
// throws a food item at them.
type Sniper struct {
	base
	cfg       SniperConfig
	sprite    ecs.Entity
	food      ecs.Entity
	bodyGate  *Gate
	foodGate  *Gate
	attack    *SniperAttack
	telegraph *Telegraph
}

var _ Controller = (*Sniper)(nil)

func NewSniper(w *ecs.World, x, y float64, cfg SniperConfig, opts Options) (*Sniper, error) {
	if len(cfg.Attack.Foods) == 0 {
		return nil, fmt.Errorf("behavior: build %s: %w", cfg.Kind, ErrEmptyFoodList)
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	s := &Sniper{base: base{w: w, opts: opts, kind: cfg.Kind}, cfg: cfg}
	if err := s.build(x, y); err != nil {
		s.Teardown()
		return nil, fmt.Errorf("behavior: build %s: %w", cfg.Kind, err)
	}
	return s, nil
}

func (s *Sniper) build(x, y float64) error {
	cfg := s.cfg
	if err := s.newRoot(x, y, cfg.Depth); err != nil {
		return err
	}
	if err := ecs.Add(s.w, s.root, component.TelegraphComponent, &component.Telegraph{}); err != nil {
		return err
	}

	var err error
	s.sprite, err = s.newPart(0, 0,
		component.Sprite{Texture: cfg.Attack.IdleTexture, Width: cfg.Width, Height: cfg.Height},
		component.Collider{Width: cfg.Width, Height: cfg.Height, CollideWorldBounds: true, Immovable: true},
		cfg.Depth)
	if err != nil {
		return err
	}
	s.food, err = s.newPart(0, 0,
		component.Sprite{Width: cfg.FoodWidth, Height: cfg.FoodHeight},
		component.Collider{Width: cfg.FoodWidth, Height: cfg.FoodHeight},
		cfg.Depth)
	if err != nil {
		return err
	}
	if err := ecs.Add(s.w, s.food, component.ProjectileTagComponent, &component.ProjectileTag{}); err != nil {
		return err
	}

	clk, rng := s.opts.Clock, s.opts.Random
	s.bodyGate = NewGate(s.w, clk, s.sprite, cfg.Kind, Hooks{})
	s.foodGate = NewGate(s.w, clk, s.food, cfg.Kind, s.opts.Hooks)
	s.foodGate.Link(s.bodyGate)

	s.attack, err = NewSniperAttack(s.w, clk, rng, &s.group, s.root, s.sprite, s.food, s.opts.Player, s.bodyGate, s.foodGate, cfg.Attack)
	if err != nil {
		return err
	}
	// registered up front so the telegraph flickers from its first firing
	RegisterAnimation(s.w, s.sprite, cfg.Attack.IdleTexture, "idle", 0, cfg.Attack.IdleFrames-1, cfg.Attack.IdleFPS, cfg.Attack.IdleRepeat)
	Stop(s.w, s.sprite)
	if fs, ok := ecs.Get(s.w, s.food, component.SpriteComponent); ok {
		fs.Texture = s.attack.Current().Food
	}
	s.telegraph = NewTelegraph(s.w, clk, rng, &s.group, s.root, s.sprite, s.opts.Player, cfg.Telegraph, s.attack.Spawn)

	s.foodGate.Watch(s.playerEntity())
	return nil
}

func (s *Sniper) Start() {
	if s.torn {
		return
	}
	s.telegraph.Start()
}

func (s *Sniper) Sprite() ecs.Entity    { return s.sprite }
func (s *Sniper) Food() ecs.Entity      { return s.food }
func (s *Sniper) BodyGate() *Gate       { return s.bodyGate }
func (s *Sniper) FoodGate() *Gate       { return s.foodGate }
func (s *Sniper) Attack() *SniperAttack { return s.attack }
func (s *Sniper) Telegraph() *Telegraph { return s.telegraph }
