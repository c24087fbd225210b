package system

import "github.com/milk9111/minigame/ecs/clock"

func newTestClock() *clock.Clock {
	return clock.New()
}
