package common

import (
	"math/rand/v2"
	"time"
)

// Random is the source of every random draw made by enemy behaviour.
type Random interface {
	// IntBetween returns a uniform integer in [min, max], both inclusive.
	IntBetween(min, max int) int
	// FloatBetween returns a uniform float in [min, max].
	FloatBetween(min, max float64) float64
}

// Pick returns a uniform element of items. items must not be empty.
func Pick[T any](r Random, items []T) T {
	return items[r.IntBetween(0, len(items)-1)]
}

type randSource struct {
	rng *rand.Rand
}

// NewRandom returns a seeded Random. A zero seed uses the current time.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *randSource) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.IntN(max-min+1)
}

func (r *randSource) FloatBetween(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}
