package component

import "github.com/jakecoffman/cp/v2"

// PhysicsBody stores the Chipmunk2D handles backing a Collider. The collision
// system creates them lazily and keeps them in sync with the Transform.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
