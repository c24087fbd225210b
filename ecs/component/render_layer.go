package component

// RenderLayer is the entity's depth. Higher indices draw on top; ties fall
// back to entity creation order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
