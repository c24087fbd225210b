package behavior

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

func newTestGiant(t *testing.T, w *ecs.World, clk *clock.Clock, opts Options) *Giant {
	t.Helper()
	opts.Clock = clk
	if opts.Random == nil {
		opts.Random = minRandom{}
	}
	g, err := NewGiant(w, 480, 300, giantConfig(), opts)
	if err != nil {
		t.Fatalf("NewGiant: %v", err)
	}
	g.Start()
	return g
}

func TestGiantEndToEnd(t *testing.T) {
	w := ecs.NewWorld()
	clk := clock.New()
	g := newTestGiant(t, w, clk, Options{Player: &mockPlayer{x: 100, y: 300}})

	x, _, _ := ecs.WorldPosition(w, g.Sprite())
	if !near(x, 330) {
		t.Fatalf("giant should start on the left bound at 330, got %v", x)
	}
	if g.State() != component.ProjectileIdle {
		t.Fatalf("expected idle at start, got %v", g.State())
	}

	clk.Advance(1000 * ms)
	if g.State() != component.ProjectileFlying {
		t.Fatalf("expected flying at 1000ms, got %v", g.State())
	}
	col, _ := ecs.Get(w, g.Barrel(), component.ColliderComponent)
	if !col.Enabled || col.CollideWorldBounds {
		t.Fatalf("expected armed barrel with world bounds off, got %+v", col)
	}
	patrol, _ := ecs.Get(w, g.Sprite(), component.PatrolComponent)
	if patrol.Follow {
		t.Fatalf("follow must be off during flight")
	}
	launchX := -150 + 480*(1000.0/15000.0)

	clk.Advance(3000 * ms)
	bt, _ := ecs.Get(w, g.Barrel(), component.TransformComponent)
	if !near(bt.X, launchX+150) {
		t.Fatalf("barrel should land 150 right of %v, got %v", launchX, bt.X)
	}
	if !near(bt.Y, 50) {
		t.Fatalf("barrel should drop to 50, got %v", bt.Y)
	}

	clk.Advance(2000 * ms)
	if clk.Now() != 6000*ms {
		t.Fatalf("clock at %v", clk.Now())
	}
	if g.State() != component.ProjectileIdle {
		t.Fatalf("expected idle at 6000ms, got %v", g.State())
	}
	if !patrol.Follow {
		t.Fatalf("follow must be back on at 6000ms")
	}
	if g.Gate().Armed() {
		t.Fatalf("barrel must be disarmed once returned")
	}
	st, _ := ecs.Get(w, g.Sprite(), component.TransformComponent)
	if !near(bt.X, st.X) || !near(bt.Y, st.Y-20) {
		t.Fatalf("barrel should snap back onto the giant, got (%v,%v)", bt.X, bt.Y)
	}
}

func TestProjectileCycleTiming(t *testing.T) {
	for _, delay := range []int{1000, 4321, 8000} {
		t.Run(time.Duration(delay*int(ms)).String(), func(t *testing.T) {
			rng := minRandom{ints: func(min, max int) (int, bool) {
				if min == 1000 && max == 8000 {
					return delay, true
				}
				return 0, false
			}}
			w := ecs.NewWorld()
			clk := clock.New()
			g := newTestGiant(t, w, clk, Options{Random: rng})
			d := time.Duration(delay) * ms

			for cycle := 0; cycle < 3; cycle++ {
				clk.Advance(d - ms)
				if g.State() != component.ProjectileIdle {
					t.Fatalf("cycle %d: expected idle 1ms before launch, got %v", cycle, g.State())
				}
				clk.Advance(ms)
				if g.State() != component.ProjectileFlying {
					t.Fatalf("cycle %d: expected flying at +%v, got %v", cycle, d, g.State())
				}
				clk.Advance(4999 * ms)
				if g.State() != component.ProjectileFlying {
					t.Fatalf("cycle %d: expected still flying at +4999ms, got %v", cycle, g.State())
				}
				clk.Advance(ms)
				if g.State() != component.ProjectileIdle {
					t.Fatalf("cycle %d: expected idle at +5000ms, got %v", cycle, g.State())
				}
			}
			p, _ := ecs.Get(w, g.Barrel(), component.ProjectileComponent)
			if p.Launches != 3 {
				t.Fatalf("expected 3 launches, got %d", p.Launches)
			}
		})
	}
}

func TestGiantArmedOnlyWhileFlyingWithoutHit(t *testing.T) {
	w := ecs.NewWorld()
	clk := clock.New()
	g := newTestGiant(t, w, clk, Options{})
	p, _ := ecs.Get(w, g.Barrel(), component.ProjectileComponent)

	hitAt := 3000 * ms
	for clk.Now() < 20*time.Second {
		clk.Advance(time.Second / 60)
		if clk.Now() >= hitAt && p.State == component.ProjectileFlying && !p.Hit && p.Launches == 1 {
			g.Gate().Hit()
		}
		want := p.State == component.ProjectileFlying && !p.Hit
		if g.Gate().Armed() != want {
			t.Fatalf("at %v armed=%v state=%v hit=%v", clk.Now(), g.Gate().Armed(), p.State, p.Hit)
		}
	}
	if g.Gate().Hits() != 1 {
		t.Fatalf("expected exactly one hit, got %d", g.Gate().Hits())
	}
}

func TestGiantHitDoesNotShortenCycle(t *testing.T) {
	w := ecs.NewWorld()
	clk := clock.New()
	g := newTestGiant(t, w, clk, Options{})

	clk.Advance(2000 * ms)
	g.Gate().Hit()
	bs, _ := ecs.Get(w, g.Barrel(), component.SpriteComponent)
	if bs.Visible {
		t.Fatalf("hit should hide the barrel")
	}
	clk.Advance(3999 * ms)
	if g.State() != component.ProjectileFlying {
		t.Fatalf("hit must not end the flight early, got %v", g.State())
	}
	clk.Advance(ms)
	if g.State() != component.ProjectileIdle || !bs.Visible {
		t.Fatalf("expected idle and visible at 6000ms, got %v visible=%v", g.State(), bs.Visible)
	}
}

func TestGiantTeardownCancelsEverything(t *testing.T) {
	w := ecs.NewWorld()
	clk := clock.New()
	player := w.CreateEntity()
	g := newTestGiant(t, w, clk, Options{Player: &mockPlayer{e: player}})

	solid, ok := ecs.Get(w, player, component.SolidComponent)
	if !ok || len(solid.Against) != 1 {
		t.Fatalf("giant should block the player")
	}
	ov, ok := ecs.Get(w, g.Barrel(), component.OverlapComponent)
	if !ok || len(ov.Triggers) != 1 || ov.Triggers[0].Other != uint64(player) {
		t.Fatalf("barrel should watch the player")
	}

	clk.Advance(1500 * ms)
	g.Teardown()
	g.Teardown()
	if g.Pending() != 0 {
		t.Fatalf("expected no pending callbacks, got %d", g.Pending())
	}
	if w.IsAlive(g.Root()) || w.IsAlive(g.Barrel()) || w.IsAlive(g.Sprite()) {
		t.Fatalf("entities should be destroyed")
	}
	if len(solid.Against) != 0 {
		t.Fatalf("teardown should drop the solid pair, got %v", solid.Against)
	}
	clk.Advance(time.Minute)
	if clk.Pending() != 0 {
		t.Fatalf("clock still has %d live callbacks", clk.Pending())
	}
}

func TestGiantDefeatFiresHook(t *testing.T) {
	w := ecs.NewWorld()
	clk := clock.New()
	var defeated []string
	g := newTestGiant(t, w, clk, Options{Hooks: Hooks{OnDefeat: func(kind string) { defeated = append(defeated, kind) }}})
	g.Defeat()
	g.Defeat()
	if len(defeated) != 1 || defeated[0] != "giant_skeleton" {
		t.Fatalf("expected one defeat for giant_skeleton, got %v", defeated)
	}
	if w.IsAlive(g.Root()) {
		t.Fatalf("defeat should tear the giant down")
	}
}

func TestGiantRequiresClock(t *testing.T) {
	_, err := NewGiant(ecs.NewWorld(), 0, 0, giantConfig(), Options{})
	if !errors.Is(err, ErrNilClock) {
		t.Fatalf("expected ErrNilClock, got %v", err)
	}
}
