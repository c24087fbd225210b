package system

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/minigame/ecs"
	"github.com/milk9111/minigame/ecs/component"
)

// collisionWorld owns the Chipmunk space mirroring every collider. Bodies
// are kinematic: positions come from transforms and the space is only used
// for bounding-box queries.
type collisionWorld struct {
	space  *cp.Space
	bodies map[ecs.Entity]*component.PhysicsBody
}

func newCollisionWorld() *collisionWorld {
	return &collisionWorld{
		space:  cp.NewSpace(),
		bodies: make(map[ecs.Entity]*component.PhysicsBody),
	}
}

// ensure creates the body for e or rebuilds it when the collider size
// changed.
func (cw *collisionWorld) ensure(w *ecs.World, e ecs.Entity, col *component.Collider) *component.PhysicsBody {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if ok && pb.Body != nil {
		bb := pb.Shape.BB()
		if near(bb.R-bb.L, col.Width) && near(bb.T-bb.B, col.Height) {
			return pb
		}
		cw.remove(e)
	}

	body := cp.NewKinematicBody()
	shape := cp.NewBox(body, col.Width, col.Height, 0)
	shape.UserData = e
	shape.SetSensor(true)
	cw.space.AddBody(body)
	cw.space.AddShape(shape)

	pb = &component.PhysicsBody{Body: body, Shape: shape}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, pb); err != nil {
		cw.space.RemoveShape(shape)
		cw.space.RemoveBody(body)
		return nil
	}
	cw.bodies[e] = pb
	return pb
}

func (cw *collisionWorld) remove(e ecs.Entity) {
	pb, ok := cw.bodies[e]
	if !ok {
		return
	}
	if pb.Shape != nil {
		cw.space.RemoveShape(pb.Shape)
	}
	if pb.Body != nil {
		cw.space.RemoveBody(pb.Body)
	}
	delete(cw.bodies, e)
}

// prune drops bodies whose entity died or lost its collider.
func (cw *collisionWorld) prune(w *ecs.World) {
	for e := range cw.bodies {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.ColliderComponent) {
			cw.remove(e)
		}
	}
}

// place moves the body onto the collider's current world centre.
func (cw *collisionWorld) place(w *ecs.World, e ecs.Entity, col *component.Collider, pb *component.PhysicsBody) {
	x, y, ok := ecs.WorldPosition(w, e)
	if !ok {
		return
	}
	pb.Body.SetPosition(cp.Vector{X: x + col.OffsetX, Y: y + col.OffsetY})
	cw.space.ReindexShape(pb.Shape)
}

// query calls fn for every shape whose box intersects bb.
func (cw *collisionWorld) query(bb cp.BB, fn func(e ecs.Entity, shape *cp.Shape)) {
	cw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(ecs.Entity)
		if !ok {
			return
		}
		fn(e, shape)
	}, nil)
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
