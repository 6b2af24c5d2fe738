package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetgun/common"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"go.uber.org/zap"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	// collisionTypeReporter marks shapes of entities that want collision
	// start events.
	collisionTypeReporter
)

const defaultColliderSize = 16.0

// PhysicsSystem mirrors ECS bodies into a Chipmunk space, steps it and copies
// the integrated state back. Collision starts involving reporting entities are
// pushed onto the world event queue.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	contacts []contact

	log *zap.Logger
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
	kind  component.BodyKind
}

type contact struct {
	a, b ecs.Entity
}

func NewPhysicsSystem(log *zap.Logger) *PhysicsSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		log:      log.Named("physics"),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World, tick *ecs.Tick) {
	if ps == nil || w == nil || tick == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.contacts = ps.contacts[:0]
	if tick.Dt > 0 {
		ps.space.Step(tick.Dt)
	}

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	for _, other := range []cp.CollisionType{collisionTypeBody, collisionTypeReporter} {
		handler := ps.space.NewCollisionHandler(collisionTypeReporter, other)
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return true
			}
			shapeA, shapeB := arb.Shapes()
			a, okA := sys.shapes[shapeA]
			b, okB := sys.shapes[shapeB]
			if okA && okB {
				sys.contacts = append(sys.contacts, contact{a: a, b: b})
			}
			return true
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info == nil {
			transform, _ := ecs.Get(w, e, component.TransformComponent)
			info = ps.createBody(w, e, *transform, *bodyComp)
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
		}

		if info.kind != bodyComp.Kind {
			ps.setKind(info, bodyComp.Kind)
			ps.log.Debug("body kind changed", zap.Stringer("entity", e), zap.Stringer("kind", bodyComp.Kind))
		}

		if info.kind == component.BodyStatic {
			continue
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			info.body.SetVelocity(vel.X, vel.Y)
		}
	}
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity, transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = defaultColliderSize
		height = defaultColliderSize
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	var body *cp.Body
	switch bodyComp.Kind {
	case component.BodyStatic:
		body = cp.NewStaticBody()
	case component.BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		moment := cp.MomentForBox(mass, width, height)
		if bodyComp.LockRotation {
			moment = cp.INFINITY
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	if !bodyComp.LockRotation {
		body.SetAngle(transform.Rotation)
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)

	layer := component.CollisionLayer{}
	if l, ok := ecs.Get(w, e, component.CollisionLayerComponent); ok {
		layer = *l
	}
	shape.SetFilter(layer.Filter())

	if ecs.Has(w, e, component.CollisionEventsComponent) {
		shape.SetCollisionType(collisionTypeReporter)
	} else {
		shape.SetCollisionType(collisionTypeBody)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape, kind: bodyComp.Kind}
}

func (ps *PhysicsSystem) setKind(info *bodyInfo, kind component.BodyKind) {
	switch kind {
	case component.BodyStatic:
		info.body.SetVelocity(0, 0)
		info.body.SetType(cp.BODY_STATIC)
	case component.BodyKinematic:
		info.body.SetType(cp.BODY_KINEMATIC)
	default:
		info.body.SetType(cp.BODY_DYNAMIC)
	}
	info.kind = kind
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.kind == component.BodyStatic || !w.IsAlive(e) {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y

		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			v := info.body.Velocity()
			vel.X = v.X
			vel.Y = v.Y
		}
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	events := w.Events()
	for _, c := range ps.contacts {
		if ecs.Has(w, c.a, component.CollisionEventsComponent) {
			events.Push(ecs.CollisionEvent{Entity: c.a, Other: c.b, Kind: ecs.CollisionStarted})
		}
		if ecs.Has(w, c.b, component.CollisionEventsComponent) {
			events.Push(ecs.CollisionEvent{Entity: c.b, Other: c.a, Kind: ecs.CollisionStarted})
		}
	}
	ps.contacts = ps.contacts[:0]
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
