package component

// LevelBounds stores the world-space bounds of the minigame arena. Colliders
// with CollideWorldBounds are kept inside it.
type LevelBounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
