package component

// Transform is the world-space position of an entity. Scale multiplies the
// sprite's authored size; zero is treated as 1 by the renderer.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
