// Package clock drives every delayed, repeating and interpolated callback of
// the minigame from one simulated timeline. Nothing here runs on its own
// goroutine; time only moves when Advance is called.
package clock

import (
	"container/heap"
	"time"
)

// Handle is a cancellable token for a pending timer or running tween.
type Handle struct {
	cancelled bool
	done      bool
}

// Cancel stops the timer or tween. Cancelling twice, or after it finished,
// is a no-op.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Active reports whether the callback may still fire.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled && !h.done
}

// Cancelled reports whether Cancel was called.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled
}

type timer struct {
	due       time.Duration
	seq       uint64
	interval  time.Duration
	remaining int
	fn        func()
	handle    *Handle
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Clock is the shared simulation clock.
type Clock struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
	tweens []*tweenRun
}

func New() *Clock {
	return &Clock{}
}

// Now returns the simulated time since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

func (c *Clock) nextSeq() uint64 {
	c.seq++
	return c.seq
}

// After calls fn once, d after now.
func (c *Clock) After(d time.Duration, fn func()) *Handle {
	return c.schedule(d, d, 1, fn)
}

// Every calls fn every d. count is the number of calls; a negative count
// repeats until cancelled.
func (c *Clock) Every(d time.Duration, fn func(), count int) *Handle {
	if count == 0 {
		return &Handle{done: true}
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return c.schedule(d, d, count, fn)
}

func (c *Clock) schedule(delay, interval time.Duration, count int, fn func()) *Handle {
	if delay < 0 {
		delay = 0
	}
	h := &Handle{}
	if fn == nil {
		h.done = true
		return h
	}
	heap.Push(&c.timers, &timer{
		due:       c.now + delay,
		seq:       c.nextSeq(),
		interval:  interval,
		remaining: count,
		fn:        fn,
		handle:    h,
	})
	return h
}

// Pending returns the number of timers and tweens that may still fire.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if t.handle.Active() {
			n++
		}
	}
	for _, r := range c.tweens {
		if r.handle.Active() {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt. Time is split at every timer due
// time and every tween end inside the window, so callbacks observe exact
// timestamps no matter how coarse dt is.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := c.now + dt
	for {
		next := target
		if due, ok := c.nextTimerDue(); ok && due < next {
			next = due
		}
		if end, ok := c.nextTweenEnd(); ok && end < next {
			next = end
		}
		step := next - c.now
		c.now = next
		c.stepTweens(step)
		c.fireDue()
		if c.now >= target {
			return
		}
	}
}

func (c *Clock) nextTimerDue() (time.Duration, bool) {
	for len(c.timers) > 0 {
		t := c.timers[0]
		if t.handle.cancelled {
			heap.Pop(&c.timers)
			continue
		}
		return t.due, true
	}
	return 0, false
}

func (c *Clock) fireDue() {
	for len(c.timers) > 0 {
		t := c.timers[0]
		if t.handle.cancelled {
			heap.Pop(&c.timers)
			continue
		}
		if t.due > c.now {
			return
		}
		heap.Pop(&c.timers)
		if t.remaining > 0 {
			t.remaining--
		}
		if t.remaining != 0 {
			t.due += t.interval
			t.seq = c.nextSeq()
			heap.Push(&c.timers, t)
		} else {
			t.handle.done = true
		}
		t.fn()
	}
}
