package system

import (
	"time"

	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/clock"
)

// ClockSystem advances the shared simulation clock by a fixed step per tick.
type ClockSystem struct {
	clock  *clock.Clock
	step   time.Duration
	Paused bool
}

func NewClockSystem(c *clock.Clock, step time.Duration) *ClockSystem {
	if step <= 0 {
		step = time.Second / 60
	}
	return &ClockSystem{clock: c, step: step}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if s == nil || s.clock == nil || s.Paused {
		return
	}
	s.clock.Advance(s.step)
}

func (s *ClockSystem) Step() time.Duration {
	return s.step
}
