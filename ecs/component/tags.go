package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// EnemyTag marks the root entity of a scripted enemy. Kind is the prefab
// name, e.g. "giant_skeleton".
type EnemyTag struct {
	Kind string
}

var EnemyTagComponent = NewComponent[EnemyTag]()

type ProjectileTag struct{}

var ProjectileTagComponent = NewComponent[ProjectileTag]()
