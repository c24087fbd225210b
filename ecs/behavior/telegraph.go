package behavior

import (
	"time"

	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

// TelegraphConfig shapes the pre-attack glitch.
type TelegraphConfig struct {
	Interval time.Duration
	Duration time.Duration
	Step     time.Duration

	JitterPx    int
	JitterScale float64
	AlphaMin    float64
	AlphaMax    float64

	FlickerCount    int
	FlickerInterval time.Duration
	FlickerMaxFrame int
}

// legs returns how many jitter legs fit in Duration.
func (cfg TelegraphConfig) legs() int {
	if cfg.Step <= 0 {
		return 1
	}
	n := int(cfg.Duration / cfg.Step)
	if n < 1 {
		return 1
	}
	return n
}

// Telegraph repeats the glitch on a fixed interval for the lifetime of the
// entity. Each firing snapshots the player's x as the anchor and calls done
// once the jitter has settled.
type Telegraph struct {
	w      *ecs.World
	clk    *clock.Clock
	rng    common.Random
	group  *clock.Group
	root   ecs.Entity
	sprite ecs.Entity
	player Player
	cfg    TelegraphConfig
	done   func()
}

func NewTelegraph(w *ecs.World, clk *clock.Clock, rng common.Random, group *clock.Group, root, sprite ecs.Entity, player Player, cfg TelegraphConfig, done func()) *Telegraph {
	return &Telegraph{
		w:      w,
		clk:    clk,
		rng:    rng,
		group:  group,
		root:   root,
		sprite: sprite,
		player: player,
		cfg:    cfg,
		done:   done,
	}
}

func (t *Telegraph) Start() {
	t.group.Track(t.clk.Every(t.cfg.Interval, t.Fire, -1))
}

// Fire runs one glitch. Without a player it does nothing.
func (t *Telegraph) Fire() {
	if t.player == nil {
		return
	}
	state, ok := ecs.Get(t.w, t.root, component.TelegraphComponent)
	if !ok {
		return
	}
	tr, ok := ecs.Get(t.w, t.sprite, component.TransformComponent)
	if !ok {
		return
	}
	sprite, ok := ecs.Get(t.w, t.sprite, component.SpriteComponent)
	if !ok {
		return
	}
	sprite.Visible = true

	px, _ := t.player.WorldPosition()
	ox, _, _ := ecs.WorldPosition(t.w, t.root)
	anchorX := px - ox

	state.Firings++
	state.AnchorX = anchorX
	state.StartedAt = t.clk.Now()
	state.Steps = 0
	state.Flickers = 0
	state.Complete = false
	t.w.Events().Push(ecs.Event{Type: ecs.EventTelegraph, Data: *state})

	if tr.ScaleX == 0 {
		tr.ScaleX = 1
	}
	if tr.ScaleY == 0 {
		tr.ScaleY = 1
	}
	origY, origSX, origSY := tr.Y, tr.ScaleX, tr.ScaleY
	tr.X = anchorX
	sprite.Alpha = 1

	jitter := float64(t.cfg.JitterPx)
	t.group.Track(t.clk.Tween(clock.TweenSpec{
		Props: []clock.Prop{
			{Value: &tr.X, To: anchorX + float64(t.rng.IntBetween(-int(jitter), int(jitter)))},
			{Value: &tr.Y, To: origY + float64(t.rng.IntBetween(-int(jitter), int(jitter)))},
			{Value: &tr.ScaleX, To: origSX + t.rng.FloatBetween(-t.cfg.JitterScale, t.cfg.JitterScale)},
			{Value: &tr.ScaleY, To: origSY + t.rng.FloatBetween(-t.cfg.JitterScale, t.cfg.JitterScale)},
			{Value: &sprite.Alpha, To: t.rng.FloatBetween(t.cfg.AlphaMin, t.cfg.AlphaMax)},
		},
		Duration: t.cfg.Step,
		Ease:     clock.Steps(2),
		Yoyo:     true,
		Repeat:   t.cfg.legs() - 1,
		OnRepeat: func(int) { state.Steps++ },
		OnComplete: func() {
			tr.X, tr.Y = anchorX, origY
			tr.ScaleX, tr.ScaleY = origSX, origSY
			sprite.Alpha = 1
			state.Steps++
			state.Complete = true
			if t.done != nil {
				t.done()
			}
		},
	}))

	if ecs.Has(t.w, t.sprite, component.AnimationComponent) {
		t.group.Track(t.clk.Every(t.cfg.FlickerInterval, func() {
			sprite.Frame = t.rng.IntBetween(0, t.cfg.FlickerMaxFrame)
			state.Flickers++
		}, t.cfg.FlickerCount))
	}
}
