package clock

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Ease maps linear progress t in [0, 1] to eased progress.
type Ease func(t float64) float64

// fromTween adapts a gween curve to unit progress. Endpoints are pinned so
// float32 rounding never leaves a finished tween short of its target.
func fromTween(fn ease.TweenFunc) Ease {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

func Linear(t float64) float64 {
	return t
}

var (
	// QuadOut starts fast and slows into the target.
	QuadOut = fromTween(ease.OutQuad)
	QuadIn  = fromTween(ease.InQuad)
	// CubicInOut accelerates through the first half and decelerates through
	// the second.
	CubicInOut = fromTween(ease.InOutCubic)
	// BounceOut lands on the target and bounces back up with shrinking height.
	BounceOut = fromTween(ease.OutBounce)
)

// Steps quantises progress into n discrete jumps. The first jump happens as
// soon as the leg starts.
func Steps(n int) Ease {
	if n < 1 {
		n = 1
	}
	steps := float64(n)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return math.Min(1, (math.Floor(steps*t)+1)/steps)
	}
}
