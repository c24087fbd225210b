package entity

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/minigame/assets"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/behavior"
	"github.com/milk9111/minigame/prefabs"
)

var ErrUnknownEnemy = errors.New("entity: unknown enemy kind")

// GiantConfig resolves a giant prefab into a controller config.
func GiantConfig(spec *prefabs.GiantSpec) (behavior.GiantConfig, error) {
	idle, err := assets.Lookup(assets.GiantSkeleton, spec.Animation.Variant)
	if err != nil {
		return behavior.GiantConfig{}, err
	}
	barrel, err := assets.Lookup(assets.GiantSkeleton, "barrel")
	if err != nil {
		return behavior.GiantConfig{}, err
	}

	frames := spec.Animation.Frames
	if frames <= 0 {
		frames = idle.Frames
	}
	return behavior.GiantConfig{
		Kind:           assets.GiantSkeleton.String(),
		IdleTexture:    idle.ID,
		BarrelTexture:  barrel.ID,
		IdleFrames:     frames,
		IdleFPS:        spec.Animation.FPS,
		IdleRepeat:     spec.Animation.Repeat,
		Width:          spec.Body.Width,
		Height:         spec.Body.Height,
		BarrelWidth:    spec.Barrel.Width,
		BarrelHeight:   spec.Barrel.Height,
		Depth:          spec.Depth,
		PatrolLeft:     spec.Patrol.Left,
		PatrolRight:    spec.Patrol.Right,
		PatrolDuration: spec.Patrol.Duration.Duration(),
		FollowOffsetY:  spec.Patrol.FollowOffsetY,
		Cycle: behavior.CycleConfig{
			MinDelay:      prefabs.Millis(spec.Throw.Delay.Min).Duration(),
			MaxDelay:      prefabs.Millis(spec.Throw.Delay.Max).Duration(),
			ThrowDistance: spec.Throw.Distance,
			ThrowDuration: spec.Throw.Duration.Duration(),
			DropMin:       spec.Throw.Drop.Min,
			DropMax:       spec.Throw.Drop.Max,
			DropDuration:  spec.Throw.DropDuration.Duration(),
			Reset:         spec.Throw.Reset.Duration(),
		},
	}, nil
}

// SniperConfig resolves a sniper prefab into a controller config.
func SniperConfig(spec *prefabs.SniperSpec) (behavior.SniperConfig, error) {
	idle, err := assets.Lookup(assets.SniperSkeleton, spec.Animation.Variant)
	if err != nil {
		return behavior.SniperConfig{}, err
	}

	foods := make([]behavior.FoodTextures, 0, len(spec.Foods))
	for _, variant := range spec.Foods {
		food, err := assets.Lookup(assets.SniperSkeleton, variant)
		if err != nil {
			return behavior.SniperConfig{}, err
		}
		splat, err := assets.Lookup(assets.SniperSkeleton, variant+"_splat")
		if err != nil {
			return behavior.SniperConfig{}, err
		}
		foods = append(foods, behavior.FoodTextures{Variant: variant, Food: food.ID, Splat: splat.ID})
	}

	frames := spec.Animation.Frames
	if frames <= 0 {
		frames = idle.Frames
	}
	tg := spec.Telegraph
	return behavior.SniperConfig{
		Kind:       assets.SniperSkeleton.String(),
		Width:      spec.Body.Width,
		Height:     spec.Body.Height,
		Depth:      spec.Depth,
		FoodWidth:  spec.Food.Width,
		FoodHeight: spec.Food.Height,
		Telegraph: behavior.TelegraphConfig{
			Interval:        tg.Interval.Duration(),
			Duration:        tg.Duration.Duration(),
			Step:            tg.Step.Duration(),
			JitterPx:        tg.JitterPx,
			JitterScale:     tg.JitterScale,
			AlphaMin:        tg.Alpha.Min,
			AlphaMax:        tg.Alpha.Max,
			FlickerCount:    tg.Flicker.Count,
			FlickerInterval: tg.Flicker.Interval.Duration(),
			FlickerMaxFrame: tg.Flicker.MaxFrame,
		},
		Attack: behavior.AttackConfig{
			Foods:         foods,
			IdleTexture:   idle.ID,
			IdleFPS:       spec.Animation.FPS,
			IdleFrames:    frames,
			IdleRepeat:    spec.Animation.Repeat,
			SplatFrames:   spec.Splat.Frames,
			SplatFPS:      spec.Splat.FPS,
			FoodOffset:    spec.Attack.FoodOffset,
			TargetOffset:  spec.Attack.TargetOffset,
			ThrowDelay:    spec.Attack.ThrowDelay.Duration(),
			ThrowDuration: spec.Attack.ThrowDuration.Duration(),
			Cleanup:       spec.Attack.Cleanup.Duration(),
		},
	}, nil
}

func NewGiantSkeleton(w *ecs.World, x, y float64, opts behavior.Options) (*behavior.Giant, error) {
	spec, err := prefabs.LoadGiantSpec()
	if err != nil {
		return nil, fmt.Errorf("giant: load spec: %w", err)
	}
	cfg, err := GiantConfig(spec)
	if err != nil {
		return nil, fmt.Errorf("giant: resolve textures: %w", err)
	}
	if opts.Hooks, err = withScript(spec.Script, opts); err != nil {
		return nil, fmt.Errorf("giant: %w", err)
	}
	return behavior.NewGiant(w, x, y, cfg, opts)
}

func NewSniperSkeleton(w *ecs.World, x, y float64, opts behavior.Options) (*behavior.Sniper, error) {
	spec, err := prefabs.LoadSniperSpec()
	if err != nil {
		return nil, fmt.Errorf("sniper: load spec: %w", err)
	}
	cfg, err := SniperConfig(spec)
	if err != nil {
		return nil, fmt.Errorf("sniper: resolve textures: %w", err)
	}
	if opts.Hooks, err = withScript(spec.Script, opts); err != nil {
		return nil, fmt.Errorf("sniper: %w", err)
	}
	return behavior.NewSniper(w, x, y, cfg, opts)
}

// withScript appends the prefab's script hooks after the caller's.
func withScript(script string, opts behavior.Options) (behavior.Hooks, error) {
	if script == "" {
		return opts.Hooks, nil
	}
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return opts.Hooks, fmt.Errorf("load script %q: %w", script, err)
	}
	hooks, err := behavior.LoadScriptHooks(script, src, opts.Portal)
	if err != nil {
		return opts.Hooks, err
	}
	return opts.Hooks.Merge(hooks), nil
}

// NewEnemy builds and starts an enemy of the named kind.
func NewEnemy(w *ecs.World, kind string, x, y float64, opts behavior.Options) (behavior.Controller, error) {
	k, err := assets.ParseKind(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, kind)
	}

	var ctrl behavior.Controller
	switch k {
	case assets.GiantSkeleton:
		ctrl, err = NewGiantSkeleton(w, x, y, opts)
	case assets.SniperSkeleton:
		ctrl, err = NewSniperSkeleton(w, x, y, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, kind)
	}
	if err != nil {
		return nil, err
	}
	ctrl.Start()
	log.Printf("entity: spawned %s at (%.0f, %.0f)", kind, x, y)
	return ctrl, nil
}
