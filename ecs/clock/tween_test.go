package clock

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTweenLinearProgress(t *testing.T) {
	c := New()
	x := 0.0
	c.Tween(TweenSpec{Props: []Prop{{Value: &x, To: 100}}, Duration: 1000 * ms})

	tests := []struct {
		advance time.Duration
		want    float64
	}{
		{250 * ms, 25},
		{250 * ms, 50},
		{500 * ms, 100},
		{time.Second, 100},
	}
	for _, tc := range tests {
		c.Advance(tc.advance)
		if !near(x, tc.want) {
			t.Fatalf("at %v got %v, want %v", c.Now(), x, tc.want)
		}
	}
}

func TestTweenCompletesAtExactTime(t *testing.T) {
	c := New()
	x := 0.0
	var doneAt time.Duration = -1
	c.Tween(TweenSpec{
		Props:      []Prop{{Value: &x, To: 1}},
		Duration:   500 * ms,
		Ease:       QuadOut,
		OnComplete: func() { doneAt = c.Now() },
	})
	c.Advance(2 * time.Second)
	if doneAt != 500*ms {
		t.Fatalf("completed at %v, want 500ms", doneAt)
	}
	if x != 1 {
		t.Fatalf("expected final value 1, got %v", x)
	}
}

func TestTweenYoyoLegs(t *testing.T) {
	c := New()
	x := 0.0
	repeats := 0
	var doneAt time.Duration = -1
	c.Tween(TweenSpec{
		Props:      []Prop{{Value: &x, To: 100}},
		Duration:   30 * ms,
		Yoyo:       true,
		Repeat:     4,
		OnRepeat:   func(int) { repeats++ },
		OnComplete: func() { doneAt = c.Now() },
	})

	c.Advance(45 * ms)
	if !near(x, 50) {
		t.Fatalf("expected 50 halfway back on the yoyo leg, got %v", x)
	}
	c.Advance(time.Second)
	if doneAt != 150*ms {
		t.Fatalf("5 legs of 30ms should end at 150ms, got %v", doneAt)
	}
	if repeats != 4 {
		t.Fatalf("expected 4 repeats, got %d", repeats)
	}
	if !near(x, 100) {
		t.Fatalf("odd number of legs ends on the target, got %v", x)
	}
}

func TestTweenInfiniteYoyo(t *testing.T) {
	c := New()
	x := 0.0
	h := c.Tween(TweenSpec{Props: []Prop{{Value: &x, To: 10}}, Duration: 100 * ms, Yoyo: true, Repeat: -1})

	c.Advance(150 * ms)
	if !near(x, 5) {
		t.Fatalf("expected 5 on the way back, got %v", x)
	}
	c.Advance(50 * ms)
	if !near(x, 0) {
		t.Fatalf("expected back at start, got %v", x)
	}
	c.Advance(10 * time.Minute)
	if !h.Active() {
		t.Fatalf("infinite tween should keep running")
	}
}

func TestTweenPropsWithOwnDurations(t *testing.T) {
	c := New()
	x, y := 0.0, 0.0
	var doneAt time.Duration
	c.Tween(TweenSpec{
		Props: []Prop{
			{Value: &x, To: 150, Duration: 3000 * ms, Ease: CubicInOut},
			{Value: &y, To: 200, Duration: 2000 * ms, Ease: BounceOut},
		},
		OnComplete: func() { doneAt = c.Now() },
	})
	c.Advance(2500 * ms)
	if !near(y, 200) {
		t.Fatalf("y should have landed after 2000ms, got %v", y)
	}
	if x <= 0 || x >= 150 {
		t.Fatalf("x should still be moving, got %v", x)
	}
	c.Advance(time.Second)
	if doneAt != 3000*ms || !near(x, 150) {
		t.Fatalf("tween should end with the longest prop, doneAt=%v x=%v", doneAt, x)
	}
}

func TestTweenCancelStopsUpdates(t *testing.T) {
	c := New()
	x := 0.0
	completed := false
	h := c.Tween(TweenSpec{Props: []Prop{{Value: &x, To: 100}}, Duration: time.Second, OnComplete: func() { completed = true }})
	c.Advance(100 * ms)
	h.Cancel()
	c.Advance(time.Second)
	if !near(x, 10) || completed {
		t.Fatalf("cancelled tween kept running: x=%v completed=%v", x, completed)
	}
}

func TestTweenUpdateSeesEveryStep(t *testing.T) {
	c := New()
	x := 0.0
	var seen []float64
	c.Tween(TweenSpec{
		Props:    []Prop{{Value: &x, To: 10}},
		Duration: 100 * ms,
		OnUpdate: func() { seen = append(seen, x) },
	})
	for i := 0; i < 4; i++ {
		c.Advance(25 * ms)
	}
	want := []float64{2.5, 5, 7.5, 10}
	if len(seen) != len(want) {
		t.Fatalf("expected %d updates, got %v", len(want), seen)
	}
	for i := range want {
		if !near(seen[i], want[i]) {
			t.Fatalf("update %d saw %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestEaseEndpoints(t *testing.T) {
	eases := map[string]Ease{
		"linear":     Linear,
		"quad_out":   QuadOut,
		"quad_in":    QuadIn,
		"cubic":      CubicInOut,
		"bounce_out": BounceOut,
		"steps":      Steps(2),
	}
	for name, e := range eases {
		t.Run(name, func(t *testing.T) {
			if !near(e(0), 0) {
				t.Fatalf("%s(0) = %v", name, e(0))
			}
			if !near(e(1), 1) {
				t.Fatalf("%s(1) = %v", name, e(1))
			}
		})
	}
}

func TestStepsIsDiscrete(t *testing.T) {
	s := Steps(2)
	tests := []struct {
		in, want float64
	}{{0.1, 0.5}, {0.49, 0.5}, {0.5, 1}, {0.9, 1}}
	for _, tc := range tests {
		if got := s(tc.in); !near(got, tc.want) {
			t.Fatalf("Steps(2)(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEaseMidpoints(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
		in   float64
		want float64
	}{
		{"quad_out", QuadOut, 0.5, 0.75},
		{"quad_in", QuadIn, 0.5, 0.25},
		{"cubic_in_out_quarter", CubicInOut, 0.25, 0.0625},
		{"cubic_in_out_half", CubicInOut, 0.5, 0.5},
		{"bounce_out_half", BounceOut, 0.5, 0.765625},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ease(tc.in); math.Abs(got-tc.want) > 1e-5 {
				t.Fatalf("%s(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
			}
		})
	}
}
