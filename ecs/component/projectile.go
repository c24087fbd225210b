package component

import "time"

type ProjectileState int

const (
	ProjectileIdle ProjectileState = iota
	ProjectileScheduled
	ProjectileFlying
	ProjectileReturning
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileIdle:
		return "idle"
	case ProjectileScheduled:
		return "scheduled"
	case ProjectileFlying:
		return "flying"
	case ProjectileReturning:
		return "returning"
	}
	return "unknown"
}

// Projectile is the runtime state of an entity's single reusable projectile.
// Hit records that the current flight was consumed by an overlap.
type Projectile struct {
	State     ProjectileState
	InFlight  bool
	Hit       bool
	TargetX   float64
	TargetY   float64
	NextDelay time.Duration
	EnteredAt time.Duration
	Launches  int
}

var ProjectileComponent = NewComponent[Projectile]()
