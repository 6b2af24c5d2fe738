package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/common"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

// PlayerControllerSystem turns the held direction keys into player velocity:
// bounded acceleration toward the wish velocity, then ground friction.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, tick *ecs.Tick) {
	if w == nil || tick == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent,
		component.ControlsComponent,
		component.VelocityComponent,
		func(_ ecs.Entity, player *component.Player, controls *component.Controls, vel *component.Velocity) {
			wish := WishDirection(tick.Input, *controls)
			v := mgl64.Vec2{vel.X, vel.Y}
			v = accelerate(v, wish, wish.Len()*player.MoveSpeed, player.Acceleration, tick.Dt)
			v = applyFriction(v, player.Friction, player.StopSpeed, tick.Dt)
			vel.X, vel.Y = v[0], v[1]
		},
	)
}

// WishDirection is the unit direction of the held movement keys, or zero when
// nothing is held or opposing keys cancel.
func WishDirection(in ecs.Input, controls component.Controls) mgl64.Vec2 {
	var wish mgl64.Vec2
	if in.Pressed(controls.Up) {
		wish[1]--
	}
	if in.Pressed(controls.Down) {
		wish[1]++
	}
	if in.Pressed(controls.Left) {
		wish[0]--
	}
	if in.Pressed(controls.Right) {
		wish[0]++
	}
	return common.Normalize(wish)
}

func accelerate(vel, wishDir mgl64.Vec2, wishSpeed, accel, dt float64) mgl64.Vec2 {
	addSpeed := wishSpeed - vel.Dot(wishDir)
	if addSpeed <= 0 {
		return vel
	}
	accelSpeed := math.Min(accel*dt*wishSpeed, addSpeed)
	return vel.Add(wishDir.Mul(accelSpeed))
}

func applyFriction(vel mgl64.Vec2, friction, stopSpeed, dt float64) mgl64.Vec2 {
	speed := vel.Len()
	control := math.Max(speed, stopSpeed)
	newSpeed := math.Max(0, speed-dt*control*friction)
	scale := newSpeed / speed
	if !common.IsFinite(scale) {
		return mgl64.Vec2{}
	}
	return vel.Mul(scale)
}
