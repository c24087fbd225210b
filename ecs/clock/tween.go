package clock

import "time"

// Prop animates one float field towards To. Zero Duration and nil Ease
// inherit the tween's values.
type Prop struct {
	Value    *float64
	To       float64
	Duration time.Duration
	Ease     Ease
}

// TweenSpec describes an interpolation. A tween plays Repeat+1 legs, each as
// long as its longest prop. With Yoyo, odd legs play backwards. Repeat -1
// plays forever.
type TweenSpec struct {
	Props      []Prop
	Duration   time.Duration
	Ease       Ease
	Yoyo       bool
	Repeat     int
	OnUpdate   func()
	OnRepeat   func(leg int)
	OnComplete func()
}

type tweenProp struct {
	value    *float64
	from     float64
	to       float64
	duration time.Duration
	ease     Ease
}

type tweenRun struct {
	spec    TweenSpec
	props   []tweenProp
	legDur  time.Duration
	started time.Duration
	elapsed time.Duration
	leg     int
	handle  *Handle
}

// Tween starts an interpolation. Start values are read now.
func (c *Clock) Tween(spec TweenSpec) *Handle {
	h := &Handle{}
	run := &tweenRun{spec: spec, started: c.now, handle: h}
	for _, p := range spec.Props {
		if p.Value == nil {
			continue
		}
		d := p.Duration
		if d <= 0 {
			d = spec.Duration
		}
		ease := p.Ease
		if ease == nil {
			ease = spec.Ease
		}
		if ease == nil {
			ease = Linear
		}
		if d > run.legDur {
			run.legDur = d
		}
		run.props = append(run.props, tweenProp{value: p.Value, from: *p.Value, to: p.To, duration: d, ease: ease})
	}
	if run.legDur <= 0 {
		// nothing to interpolate over: land on the targets right away
		run.apply(0, 0)
		h.done = true
		if spec.OnUpdate != nil {
			spec.OnUpdate()
		}
		if spec.OnComplete != nil {
			spec.OnComplete()
		}
		return h
	}
	c.tweens = append(c.tweens, run)
	return h
}

func (r *tweenRun) total() (time.Duration, bool) {
	if r.spec.Repeat < 0 {
		return 0, false
	}
	return r.legDur * time.Duration(r.spec.Repeat+1), true
}

func (r *tweenRun) apply(leg int, in time.Duration) {
	backward := r.spec.Yoyo && leg%2 == 1
	for _, p := range r.props {
		t := 1.0
		if p.duration > 0 && in < p.duration {
			t = float64(in) / float64(p.duration)
		}
		if backward {
			*p.value = p.from + (p.to-p.from)*p.ease(1-t)
		} else {
			*p.value = p.from + (p.to-p.from)*p.ease(t)
		}
	}
}

// step advances the run and reports whether it finished.
func (r *tweenRun) step(dt time.Duration) bool {
	r.elapsed += dt
	if total, finite := r.total(); finite && r.elapsed >= total {
		r.elapsed = total
		r.fireRepeats(r.spec.Repeat)
		r.apply(r.spec.Repeat, r.legDur)
		return true
	}
	leg := int(r.elapsed / r.legDur)
	r.fireRepeats(leg)
	r.apply(leg, r.elapsed-time.Duration(leg)*r.legDur)
	return false
}

func (r *tweenRun) fireRepeats(leg int) {
	for r.leg < leg {
		r.leg++
		if r.spec.OnRepeat != nil {
			r.spec.OnRepeat(r.leg)
		}
	}
}

func (c *Clock) nextTweenEnd() (time.Duration, bool) {
	var (
		best  time.Duration
		found bool
	)
	for _, r := range c.tweens {
		if !r.handle.Active() {
			continue
		}
		total, finite := r.total()
		if !finite {
			continue
		}
		end := r.started + total
		if !found || end < best {
			best, found = end, true
		}
	}
	return best, found
}

func (c *Clock) stepTweens(dt time.Duration) {
	if len(c.tweens) == 0 {
		return
	}
	var kept, finished []*tweenRun
	for _, r := range c.tweens {
		if r.handle.cancelled {
			continue
		}
		if r.step(dt) {
			r.handle.done = true
			finished = append(finished, r)
			continue
		}
		kept = append(kept, r)
	}
	// tweens started from the callbacks below are appended after kept and
	// first step on the next window
	c.tweens = kept

	for _, r := range kept {
		if r.handle.cancelled || r.spec.OnUpdate == nil {
			continue
		}
		r.spec.OnUpdate()
	}
	for _, r := range finished {
		if r.spec.OnUpdate != nil {
			r.spec.OnUpdate()
		}
		if r.spec.OnComplete != nil {
			r.spec.OnComplete()
		}
	}
}
