package component

// Collider is an axis-aligned box centred on the Transform plus offset.
// Enabled is the hit-detection flag; a disabled collider takes part in no
// overlap, solid or world-bound checks.
type Collider struct {
	Width              float64
	Height             float64
	OffsetX            float64
	OffsetY            float64
	Enabled            bool
	CollideWorldBounds bool
	Immovable          bool
}

var ColliderComponent = NewComponent[Collider]()
