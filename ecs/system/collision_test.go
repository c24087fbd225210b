package system

import (
	"testing"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

func addBox(t *testing.T, w *ecs.World, x, y, size float64, enabled bool) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, &component.Collider{Width: size, Height: size, Enabled: enabled}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCollisionOverlapFiresOnEnter(t *testing.T) {
	w := ecs.NewWorld()
	a := addBox(t, w, 0, 0, 10, true)
	b := addBox(t, w, 5, 0, 10, true)
	fired := 0
	if err := ecs.Add(w, a, component.OverlapComponent, &component.Overlap{Triggers: []*component.OverlapTrigger{
		{Other: uint64(b), OnOverlap: func() { fired++ }},
	}}); err != nil {
		t.Fatal(err)
	}
	sys := NewCollisionSystem()
	bt, _ := ecs.Get(w, b, component.TransformComponent)
	ac, _ := ecs.Get(w, a, component.ColliderComponent)

	steps := []struct {
		name  string
		setup func()
		want  int
	}{
		{"enter", func() {}, 1},
		{"stay", func() {}, 1},
		{"leave", func() { bt.X = 50 }, 1},
		{"re_enter", func() { bt.X = 5 }, 2},
		{"disabled", func() { ac.Enabled = false }, 2},
		{"re_armed_while_touching", func() { ac.Enabled = true }, 3},
	}
	for _, st := range steps {
		st.setup()
		sys.Update(w)
		if fired != st.want {
			t.Fatalf("%s: expected %d overlaps, got %d", st.name, st.want, fired)
		}
	}
}

func TestCollisionOverlapUsesWorldPosition(t *testing.T) {
	w := ecs.NewWorld()
	root := w.CreateEntity()
	if err := ecs.Add(w, root, component.TransformComponent, &component.Transform{X: 100, Y: 0}); err != nil {
		t.Fatal(err)
	}
	child := addBox(t, w, 0, 0, 10, true)
	if err := ecs.Add(w, child, component.ParentComponent, &component.Parent{Entity: uint64(root)}); err != nil {
		t.Fatal(err)
	}
	atOrigin := addBox(t, w, 0, 0, 10, true)
	far := addBox(t, w, 100, 0, 10, true)

	hits := map[string]int{}
	if err := ecs.Add(w, child, component.OverlapComponent, &component.Overlap{Triggers: []*component.OverlapTrigger{
		{Other: uint64(atOrigin), OnOverlap: func() { hits["near"]++ }},
		{Other: uint64(far), OnOverlap: func() { hits["far"]++ }},
	}}); err != nil {
		t.Fatal(err)
	}
	NewCollisionSystem().Update(w)
	if hits["near"] != 0 || hits["far"] != 1 {
		t.Fatalf("child should collide at its world position, got %v", hits)
	}
}

func TestCollisionClampsToWorldBounds(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		enabled bool
		clip    bool
		want    float64
	}{
		{"outside_right", 150, true, true, 95},
		{"outside_left", -20, true, true, 5},
		{"inside", 50, true, true, 50},
		{"clipping_off", 150, true, false, 150},
		{"disarmed", 150, false, true, 150},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			be := w.CreateEntity()
			if err := ecs.Add(w, be, component.LevelBoundsComponent, &component.LevelBounds{Width: 100, Height: 100}); err != nil {
				t.Fatal(err)
			}
			e := addBox(t, w, tc.x, 50, 10, tc.enabled)
			col, _ := ecs.Get(w, e, component.ColliderComponent)
			col.CollideWorldBounds = tc.clip

			NewCollisionSystem().Update(w)
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			if tr.X != tc.want {
				t.Fatalf("expected x=%v, got %v", tc.want, tr.X)
			}
		})
	}
}

func TestCollisionSolidPushesOwnerOnly(t *testing.T) {
	w := ecs.NewWorld()
	player := addBox(t, w, 50, 0, 10, true)
	giant := addBox(t, w, 55, 0, 10, true)
	if err := ecs.Add(w, player, component.SolidComponent, &component.Solid{Against: []uint64{uint64(giant)}}); err != nil {
		t.Fatal(err)
	}
	NewCollisionSystem().Update(w)

	pt, _ := ecs.Get(w, player, component.TransformComponent)
	gt, _ := ecs.Get(w, giant, component.TransformComponent)
	if pt.X != 45 {
		t.Fatalf("player should be pushed to 45, got %v", pt.X)
	}
	if gt.X != 55 {
		t.Fatalf("giant must not move, got %v", gt.X)
	}
}

func TestCollisionPrunesDeadBodies(t *testing.T) {
	w := ecs.NewWorld()
	e := addBox(t, w, 0, 0, 10, true)
	sys := NewCollisionSystem()
	sys.Update(w)
	if len(sys.world.bodies) != 1 {
		t.Fatalf("expected one body, got %d", len(sys.world.bodies))
	}
	w.DestroyEntity(e)
	sys.Update(w)
	if len(sys.world.bodies) != 0 {
		t.Fatalf("expected dead body to be pruned, got %d", len(sys.world.bodies))
	}
}
