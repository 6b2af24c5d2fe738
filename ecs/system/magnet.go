package system

import (
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"go.uber.org/zap"
)

// MagnetSystem runs the magnet's per-step state machine: damping and the
// one-way settle to a static body, the pull on bullets, and aging.
type MagnetSystem struct {
	log *zap.Logger
}

func NewMagnetSystem(log *zap.Logger) *MagnetSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MagnetSystem{log: log.Named("magnet")}
}

func (s *MagnetSystem) Update(w *ecs.World, tick *ecs.Tick) {
	if w == nil || tick == nil {
		return
	}

	magnets := w.Query(component.MagnetComponent.Kind(), component.TransformComponent.Kind())
	if len(magnets) == 0 {
		return
	}

	for _, m := range magnets {
		s.settleOrDamp(w, m)
	}

	// the settle decision above must be made before aging reads alive time
	if len(magnets) == 1 {
		s.attract(w, magnets[0], tick.Dt)
	} else {
		s.log.Warn("more than one magnet alive, attraction skipped", zap.Int("count", len(magnets)))
	}

	for _, m := range magnets {
		s.age(w, m, tick.Dt)
	}
}

func (s *MagnetSystem) settleOrDamp(w *ecs.World, m ecs.Entity) {
	body, ok := ecs.Get(w, m, component.PhysicsBodyComponent)
	if !ok || body.Kind == component.BodyStatic {
		return
	}
	vel, ok := ecs.Get(w, m, component.VelocityComponent)
	if !ok {
		return
	}

	settleSpeed := 0.0
	if magnet, ok := ecs.Get(w, m, component.MagnetComponent); ok {
		settleSpeed = magnet.SettleSpeed
	}

	if vel.Speed() < settleSpeed {
		body.Kind = component.BodyStatic
		vel.X, vel.Y = 0, 0
		ecs.Remove(w, m, component.MagnetAliveTimeComponent)
		s.log.Debug("settled", zap.Stringer("entity", m))
		return
	}

	if friction, ok := ecs.Get(w, m, component.ProjectileFrictionComponent); ok {
		vel.X *= 1 - friction.Value
		vel.Y *= 1 - friction.Value
	}
}

func (s *MagnetSystem) attract(w *ecs.World, m ecs.Entity, dt float64) {
	magnetTransform, ok := ecs.Get(w, m, component.TransformComponent)
	if !ok {
		return
	}
	strength := 0.0
	if st, ok := ecs.Get(w, m, component.MagnetStrengthComponent); ok {
		strength = st.Value
	}
	if strength == 0 {
		return
	}

	ecs.ForEach3(w,
		component.BulletTagComponent,
		component.TransformComponent,
		component.VelocityComponent,
		func(_ ecs.Entity, _ *component.BulletTag, transform *component.Transform, vel *component.Velocity) {
			// aim at where the bullet will be, not where it is
			predictedX := transform.X + vel.X*2*dt
			predictedY := transform.Y + vel.Y*2*dt
			vel.X += (magnetTransform.X - predictedX) * strength
			vel.Y += (magnetTransform.Y - predictedY) * strength
		},
	)
}

func (s *MagnetSystem) age(w *ecs.World, m ecs.Entity, dt float64) {
	alive, ok := ecs.Get(w, m, component.MagnetAliveTimeComponent)
	if !ok {
		return
	}
	alive.Current += dt
	if alive.Current <= alive.Max {
		return
	}

	step := 0.0
	if magnet, ok := ecs.Get(w, m, component.MagnetComponent); ok {
		step = magnet.AgingStep
	}
	if friction, ok := ecs.Get(w, m, component.ProjectileFrictionComponent); ok {
		friction.Value += step
	}
}
