package component

// Parent makes the entity's Transform local to another entity's Transform.
// Only translation is inherited.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
