package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/minigame/common"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/behavior"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
	"github.com/milk9111/minigame/ecs/entity"
	"github.com/milk9111/minigame/ecs/system"
	"github.com/milk9111/minigame/prefabs"
)

const tps = 60

type Game struct {
	frames int
	seed   uint64
	width  int
	height int

	world     *ecs.World
	clock     *clock.Clock
	scheduler *ecs.Scheduler
	clockSys  *system.ClockSystem
	render    *system.RenderSystem
	arena     *entity.Arena
	portal    *portal
	watcher   *prefabs.Watcher

	launches   int
	hits       int
	telegraphs int
	last       string
}

// portal is the interpreter state scripts read through portal_state().
type portal struct {
	state string
}

func (p *portal) State() string { return p.state }

func NewGame(seed uint64, debug, watch bool) (*Game, error) {
	g := &Game{seed: seed, render: system.NewRenderSystem(), portal: &portal{state: "open"}}
	g.render.Debug = debug
	if err := g.load(); err != nil {
		return nil, err
	}
	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load builds a fresh world from game.yaml.
func (g *Game) load() error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	g.width, g.height = spec.Width, spec.Height

	g.world = ecs.NewWorld()
	g.clock = clock.New()
	g.clockSys = system.NewClockSystem(g.clock, time.Second/tps)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControlSystem(tps),
		g.clockSys,
		system.NewAnimationSystem(g.clockSys.Step()),
		system.NewCollisionSystem(),
	)

	arena, err := entity.LoadArena(g.world, spec, behavior.Options{
		Clock:  g.clock,
		Random: common.NewRandom(g.seed),
		Portal: g.portal,
		Hooks: behavior.Hooks{
			OnDefeat: func(kind string) { g.last = kind + " defeated" },
		},
	})
	if err != nil {
		return fmt.Errorf("game: load %s: %w", spec.Name, err)
	}
	g.arena = arena
	g.launches, g.hits, g.telegraphs = 0, 0, 0
	log.Printf("game: loaded %s with %d enemies", spec.Name, len(arena.Enemies))
	return nil
}

func (g *Game) reload(reason string) {
	if g.arena != nil {
		g.arena.Teardown(g.world)
	}
	g.portal.state = "open"
	if err := g.load(); err != nil {
		log.Printf("game: reload after %s: %v", reason, err)
		return
	}
	g.last = "reloaded: " + reason
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.render.Debug = !g.render.Debug
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.clockSys.Paused = !g.clockSys.Paused
		if g.clockSys.Paused {
			g.portal.state = "paused"
		} else {
			g.portal.state = "open"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reload("restart")
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.portal.state = "closing"
		for _, c := range g.arena.Enemies {
			c.Defeat()
		}
		g.arena.Enemies = nil
	}

	if g.clockSys.Paused {
		return nil
	}
	g.scheduler.Update(g.world)

	for _, ev := range g.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventProjectileLaunch:
			g.launches++
		case ecs.EventTelegraph:
			g.telegraphs++
			if st, ok := ev.Data.(component.Telegraph); ok {
				g.last = fmt.Sprintf("telegraph at x=%.0f", st.AnchorX)
			}
		case ecs.EventProjectileHit:
			g.hits++
			if info, ok := ev.Data.(behavior.HitInfo); ok {
				g.last = fmt.Sprintf("%s hit at %v", info.Kind, info.At)
			}
		}
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case change, ok := <-g.watcher.Changes:
		if ok {
			g.reload(change.String())
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	status := ""
	if g.clockSys.Paused {
		status = "  [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  t=%v%s\nlaunches: %d  hits: %d  telegraphs: %d\n%s",
		ebiten.ActualFPS(), g.clock.Now().Truncate(time.Millisecond), status, g.launches, g.hits, g.telegraphs, g.last,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}
