package behavior

import (
	"testing"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
	"github.com/milk9111/minigame/ecs/component"
)

func newGateEntity(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Visible: true}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, &component.Collider{Width: 4, Height: 4}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestGateDisarmIsIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	e := newGateEntity(t, w)
	g := NewGate(w, clock.New(), e, "giant_skeleton", Hooks{})

	g.Arm(false)
	if !g.Armed() {
		t.Fatalf("expected armed after Arm")
	}
	for i := 0; i < 2; i++ {
		g.Disarm()
		if g.Armed() {
			t.Fatalf("expected disarmed after Disarm #%d", i+1)
		}
	}
	s, _ := ecs.Get(w, e, component.SpriteComponent)
	if !s.Visible {
		t.Fatalf("disarm must not hide the sprite")
	}
}

func TestGateArmSetsWorldBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds bool
	}{
		{"flight_unclipped", false},
		{"body_clipped", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newGateEntity(t, w)
			g := NewGate(w, clock.New(), e, "x", Hooks{})
			g.Arm(tc.bounds)
			col, _ := ecs.Get(w, e, component.ColliderComponent)
			if col.CollideWorldBounds != tc.bounds {
				t.Fatalf("expected CollideWorldBounds=%v, got %v", tc.bounds, col.CollideWorldBounds)
			}
		})
	}
}

func TestGateHitOnlyOnce(t *testing.T) {
	w := ecs.NewWorld()
	e := newGateEntity(t, w)
	other := newGateEntity(t, w)

	hits, damage := 0, 0
	g := NewGate(w, clock.New(), e, "sniper_skeleton", Hooks{
		OnHit:    func(HitInfo) { hits++ },
		OnDamage: func(HitInfo) { damage++ },
	})
	body := NewGate(w, clock.New(), other, "sniper_skeleton", Hooks{})
	g.Link(body)
	g.Arm(false)
	body.Arm(true)

	g.Hit()
	g.Hit()

	if hits != 1 || damage != 1 {
		t.Fatalf("expected one hit and one damage, got %d and %d", hits, damage)
	}
	if g.Hits() != 1 {
		t.Fatalf("expected gate to count one hit, got %d", g.Hits())
	}
	if g.Armed() || body.Armed() {
		t.Fatalf("hit must disarm the gate and its linked gates")
	}
	s, _ := ecs.Get(w, e, component.SpriteComponent)
	if s.Visible {
		t.Fatalf("hit must hide the projectile")
	}
	evs := w.Events().Drain()
	if len(evs) != 1 || evs[0].Type != ecs.EventProjectileHit {
		t.Fatalf("expected a single hit event, got %v", evs)
	}
}

func TestGateIgnoresHitWhileDisarmed(t *testing.T) {
	w := ecs.NewWorld()
	e := newGateEntity(t, w)
	called := false
	g := NewGate(w, clock.New(), e, "x", Hooks{OnHit: func(HitInfo) { called = true }})
	g.Hit()
	if called {
		t.Fatalf("disarmed gate must not fire hooks")
	}
	s, _ := ecs.Get(w, e, component.SpriteComponent)
	if !s.Visible {
		t.Fatalf("disarmed gate must not hide the sprite")
	}
}
