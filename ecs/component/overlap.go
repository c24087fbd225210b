package component

// OverlapTrigger is a non-blocking trigger between the owning entity and
// Other. OnOverlap fires once each time the pair newly starts overlapping.
type OverlapTrigger struct {
	Other     uint64
	OnOverlap func()
	Touching  bool
}

// Overlap holds every trigger registered on an entity.
type Overlap struct {
	Triggers []*OverlapTrigger
}

var OverlapComponent = NewComponent[Overlap]()

// Solid lists entities the owner cannot pass through. The owner is pushed
// out; the other side is never moved.
type Solid struct {
	Against []uint64
}

var SolidComponent = NewComponent[Solid]()
