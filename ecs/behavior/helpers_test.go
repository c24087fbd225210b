package behavior

import (
	"math"
	"time"

	"github.com/milk9111/minigame/ecs"
)

const ms = time.Millisecond

// minRandom always returns the low end of a range unless ints overrides it.
type minRandom struct {
	ints func(min, max int) (int, bool)
}

func (r minRandom) IntBetween(min, max int) int {
	if r.ints != nil {
		if v, ok := r.ints(min, max); ok {
			return v
		}
	}
	return min
}

func (r minRandom) FloatBetween(min, max float64) float64 {
	return min
}

// mockPlayer is a movable player outside the world.
type mockPlayer struct {
	x, y float64
	e    ecs.Entity
}

func (p *mockPlayer) LocalX() float64                   { return p.x }
func (p *mockPlayer) WorldPosition() (float64, float64) { return p.x, p.y }
func (p *mockPlayer) Entity() ecs.Entity                { return p.e }

type mockPortal struct {
	state string
	reads int
}

func (p *mockPortal) State() string {
	p.reads++
	return p.state
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func giantConfig() GiantConfig {
	return GiantConfig{
		Kind:           "giant_skeleton",
		IdleTexture:    "giant_skeleton_idle",
		BarrelTexture:  "giant_skeleton_barrel",
		IdleFrames:     4,
		IdleFPS:        4,
		IdleRepeat:     -1,
		Width:          32,
		Height:         48,
		BarrelWidth:    16,
		BarrelHeight:   16,
		Depth:          10,
		PatrolLeft:     -150,
		PatrolRight:    330,
		PatrolDuration: 15000 * ms,
		FollowOffsetY:  -20,
		Cycle: CycleConfig{
			MinDelay:      1000 * ms,
			MaxDelay:      8000 * ms,
			ThrowDistance: 150,
			ThrowDuration: 3000 * ms,
			DropMin:       50,
			DropMax:       200,
			DropDuration:  2000 * ms,
			Reset:         5000 * ms,
		},
	}
}

func sniperConfig() SniperConfig {
	return SniperConfig{
		Kind:       "sniper_skeleton",
		Width:      16,
		Height:     24,
		Depth:      10,
		FoodWidth:  8,
		FoodHeight: 8,
		Telegraph: TelegraphConfig{
			Interval:        5000 * ms,
			Duration:        150 * ms,
			Step:            30 * ms,
			JitterPx:        4,
			JitterScale:     0.08,
			AlphaMin:        0.7,
			AlphaMax:        1,
			FlickerCount:    5,
			FlickerInterval: 20 * ms,
			FlickerMaxFrame: 3,
		},
		Attack: AttackConfig{
			Foods: []FoodTextures{
				{Variant: "tomato", Food: "sniper_skeleton_tomato", Splat: "sniper_skeleton_tomato_splat"},
			},
			IdleTexture:   "sniper_skeleton_idle",
			IdleFPS:       4,
			IdleFrames:    4,
			IdleRepeat:    0,
			SplatFrames:   5,
			SplatFPS:      15,
			FoodOffset:    10,
			TargetOffset:  15,
			ThrowDelay:    300 * ms,
			ThrowDuration: 500 * ms,
			Cleanup:       2000 * ms,
		},
	}
}
