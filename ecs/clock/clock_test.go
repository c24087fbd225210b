package clock

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestAfterFiresAtExactTime(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		steps []time.Duration
	}{
		{"single_step", 1000 * ms, []time.Duration{10 * time.Second}},
		{"frame_steps", 1000 * ms, repeatStep(time.Second/60, 120)},
		{"exact_boundary", 8000 * ms, []time.Duration{7999 * ms, ms}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			var firedAt time.Duration = -1
			c.After(tc.delay, func() { firedAt = c.Now() })
			for _, s := range tc.steps {
				c.Advance(s)
			}
			if firedAt != tc.delay {
				t.Fatalf("fired at %v, want %v", firedAt, tc.delay)
			}
		})
	}
}

func repeatStep(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestAfterNotEarly(t *testing.T) {
	c := New()
	fired := false
	c.After(300*ms, func() { fired = true })
	c.Advance(299 * ms)
	if fired {
		t.Fatalf("timer fired early")
	}
	c.Advance(ms)
	if !fired {
		t.Fatalf("timer did not fire at due time")
	}
}

func TestSameInstantRunsInSchedulingOrder(t *testing.T) {
	c := New()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		c.After(100*ms, func() { order = append(order, i) })
	}
	c.Advance(time.Second)
	for i, v := range order {
		if v != i {
			t.Fatalf("expected scheduling order, got %v", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("expected 5 calls, got %d", len(order))
	}
}

func TestEvery(t *testing.T) {
	t.Run("counted", func(t *testing.T) {
		c := New()
		var at []time.Duration
		c.Every(20*ms, func() { at = append(at, c.Now()) }, 5)
		c.Advance(time.Second)
		if len(at) != 5 {
			t.Fatalf("expected 5 calls, got %d", len(at))
		}
		for i, v := range at {
			if want := time.Duration(i+1) * 20 * ms; v != want {
				t.Fatalf("call %d at %v, want %v", i, v, want)
			}
		}
	})

	t.Run("forever_until_cancel", func(t *testing.T) {
		c := New()
		calls := 0
		var h *Handle
		h = c.Every(5000*ms, func() {
			calls++
			if calls == 3 {
				h.Cancel()
			}
		}, -1)
		c.Advance(60 * time.Second)
		if calls != 3 {
			t.Fatalf("expected 3 calls before cancel, got %d", calls)
		}
		if h.Active() {
			t.Fatalf("cancelled handle should not be active")
		}
	})

	t.Run("zero_count", func(t *testing.T) {
		c := New()
		h := c.Every(ms, func() { t.Fatalf("should not fire") }, 0)
		c.Advance(time.Second)
		if h.Active() {
			t.Fatalf("zero count handle should be done")
		}
	})
}

func TestCancelBeforeFire(t *testing.T) {
	c := New()
	h := c.After(100*ms, func() { t.Fatalf("cancelled timer fired") })
	h.Cancel()
	h.Cancel()
	c.Advance(time.Second)
	if c.Pending() != 0 {
		t.Fatalf("expected nothing pending, got %d", c.Pending())
	}
}

func TestNestedScheduling(t *testing.T) {
	c := New()
	var at []time.Duration
	var loop func()
	loop = func() {
		at = append(at, c.Now())
		if len(at) < 4 {
			c.After(1000*ms, loop)
		}
	}
	c.After(1000*ms, loop)
	c.Advance(10 * time.Second)
	want := []time.Duration{1000 * ms, 2000 * ms, 3000 * ms, 4000 * ms}
	if len(at) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), at)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Fatalf("call %d at %v, want %v", i, at[i], want[i])
		}
	}
}

func TestZeroDelayFromCallbackRunsSameAdvance(t *testing.T) {
	c := New()
	second := false
	c.After(10*ms, func() {
		c.After(0, func() { second = true })
	})
	c.Advance(10 * ms)
	if !second {
		t.Fatalf("zero-delay timer scheduled at due time should fire in the same advance")
	}
}

func TestGroupCancel(t *testing.T) {
	c := New()
	var g Group
	fired := 0
	g.Track(c.After(100*ms, func() { fired++ }))
	g.Track(c.Every(50*ms, func() { fired++ }, -1))
	x := 0.0
	g.Track(c.Tween(TweenSpec{Props: []Prop{{Value: &x, To: 10}}, Duration: time.Second}))

	if g.Active() != 3 {
		t.Fatalf("expected 3 active handles, got %d", g.Active())
	}
	g.Cancel()
	c.Advance(5 * time.Second)
	if fired != 0 || x != 0 {
		t.Fatalf("expected nothing to run after cancel, fired=%d x=%v", fired, x)
	}
	if !g.Cancelled() {
		t.Fatalf("group should report cancelled")
	}
	late := g.Track(c.After(ms, func() { fired++ }))
	c.Advance(time.Second)
	if late.Active() || fired != 0 {
		t.Fatalf("handles tracked after cancel must be cancelled")
	}
}

func TestGroupPrunesFinishedHandles(t *testing.T) {
	c := New()
	var g Group
	for i := 0; i < 100; i++ {
		g.Track(c.After(ms, func() {}))
		c.Advance(ms)
	}
	if len(g.handles) > 33 {
		t.Fatalf("expected finished handles to be pruned, have %d", len(g.handles))
	}
}
