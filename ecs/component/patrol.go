package component

// Patrol is the back-and-forth movement state of an entity. Left and Right
// are fixed x bounds in the same space as the entity's Transform. While
// Follow is set, the Follower entity is pinned to the patroller's position
// plus FollowOffsetY every tick.
type Patrol struct {
	Left          float64
	Right         float64
	Direction     int
	Follow        bool
	Follower      uint64
	FollowOffsetY float64
	PrevX         float64
}

var PatrolComponent = NewComponent[Patrol]()
