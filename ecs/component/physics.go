package component

import "github.com/jakecoffman/cp"

// BodyKind selects how the physics substrate integrates a body.
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyKinematic
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. Body
// and Shape are filled in by the physics system the first step it sees the
// entity.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Kind         BodyKind
	Width        float64
	Height       float64
	Mass         float64
	Friction     float64
	Elasticity   float64
	LockRotation bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// CollisionEvents asks the physics system to report collision starts for the
// entity.
type CollisionEvents struct{}

var CollisionEventsComponent = NewComponent[CollisionEvents]()

// DespawnOnContact removes the entity on the first collision start it
// receives.
type DespawnOnContact struct{}

var DespawnOnContactComponent = NewComponent[DespawnOnContact]()
