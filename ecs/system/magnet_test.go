package system

import (
	"testing"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

type magnetOpts struct {
	x, y     float64
	vx, vy   float64
	friction float64
	maxAlive float64
}

func spawnTestMagnet(t *testing.T, w *ecs.World, o magnetOpts) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.MagnetComponent, &component.Magnet{SettleSpeed: 10, AgingStep: 0.0125})
	add(t, w, e, component.MagnetStrengthComponent, &component.MagnetStrength{Value: 0.9})
	add(t, w, e, component.MagnetAliveTimeComponent, &component.MagnetAliveTime{Max: o.maxAlive})
	add(t, w, e, component.ProjectileFrictionComponent, &component.ProjectileFriction{Value: o.friction})
	add(t, w, e, component.TransformComponent, &component.Transform{X: o.x, Y: o.y})
	add(t, w, e, component.VelocityComponent, &component.Velocity{X: o.vx, Y: o.vy})
	add(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Kind: component.BodyDynamic})
	return e
}

func spawnTestBullet(t *testing.T, w *ecs.World, x, y, vx, vy float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.BulletTagComponent, &component.BulletTag{})
	add(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	add(t, w, e, component.VelocityComponent, &component.Velocity{X: vx, Y: vy})
	return e
}

func TestMagnetPullsBulletTowardItself(t *testing.T) {
	w := ecs.NewWorld()
	// already settled, so only the attraction step touches anything
	m := spawnTestMagnet(t, w, magnetOpts{maxAlive: 3})
	body, _ := ecs.Get(w, m, component.PhysicsBodyComponent)
	body.Kind = component.BodyStatic

	b := spawnTestBullet(t, w, 100, 0, -50, 0)

	NewMagnetSystem(nil).Update(w, &ecs.Tick{Dt: 1.0 / 60})

	vel, _ := ecs.Get(w, b, component.VelocityComponent)
	// predicted x = 100 - 50*2/60 = 98.333..., pull = -98.333 * 0.9 = -88.5
	if !approx(vel.X-(-50), -88.5, 1e-9) {
		t.Fatalf("velocity delta = %v, want -88.5", vel.X+50)
	}
	if vel.Y != 0 {
		t.Fatalf("velocity y = %v, want 0", vel.Y)
	}
}

func TestMagnetSettleIsOneWay(t *testing.T) {
	w := ecs.NewWorld()
	m := spawnTestMagnet(t, w, magnetOpts{vx: 100, friction: 0.5, maxAlive: 3})
	sys := NewMagnetSystem(nil)
	tick := &ecs.Tick{Dt: 0.5}

	// 100 -> 50 -> 25 -> 12.5 -> 6.25, then settles on the fifth step
	settledAt := 0
	for i := 1; i <= 10; i++ {
		sys.Update(w, tick)
		body, _ := ecs.Get(w, m, component.PhysicsBodyComponent)
		if body.Kind == component.BodyStatic && settledAt == 0 {
			settledAt = i
		}
		if settledAt != 0 {
			if body.Kind != component.BodyStatic {
				t.Fatalf("step %d: magnet left the static state", i)
			}
			if ecs.Has(w, m, component.MagnetAliveTimeComponent) {
				t.Fatalf("step %d: settled magnet still ages", i)
			}
		}
	}
	if settledAt != 5 {
		t.Fatalf("settled at step %d, want 5", settledAt)
	}

	vel, _ := ecs.Get(w, m, component.VelocityComponent)
	if vel.X != 0 || vel.Y != 0 {
		t.Fatalf("settled velocity = %+v, want zero", *vel)
	}
}

func TestMagnetDampsWhileMoving(t *testing.T) {
	w := ecs.NewWorld()
	m := spawnTestMagnet(t, w, magnetOpts{vx: 200, vy: -400, friction: 0.25, maxAlive: 3})

	NewMagnetSystem(nil).Update(w, &ecs.Tick{Dt: 0.5})

	vel, _ := ecs.Get(w, m, component.VelocityComponent)
	if vel.X != 150 || vel.Y != -300 {
		t.Fatalf("velocity = %+v, want (150, -300)", *vel)
	}
}

func TestMagnetAging(t *testing.T) {
	w := ecs.NewWorld()
	m := spawnTestMagnet(t, w, magnetOpts{vx: 10000, friction: 0, maxAlive: 1})
	sys := NewMagnetSystem(nil)
	tick := &ecs.Tick{Dt: 0.5}

	wantFriction := []float64{0, 0, 0.0125, 0.025}
	for i, want := range wantFriction {
		sys.Update(w, tick)
		friction, _ := ecs.Get(w, m, component.ProjectileFrictionComponent)
		if !approx(friction.Value, want, 1e-12) {
			t.Fatalf("step %d: friction = %v, want %v", i+1, friction.Value, want)
		}
	}

	alive, ok := ecs.Get(w, m, component.MagnetAliveTimeComponent)
	if !ok || alive.Current != 2 {
		t.Fatalf("alive time = %+v, want current 2", alive)
	}
}

func TestMagnetAttractionNeedsExactlyOneMagnet(t *testing.T) {
	tests := []struct {
		name    string
		magnets int
	}{
		{"none", 0},
		{"two", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			for i := 0; i < tc.magnets; i++ {
				spawnTestMagnet(t, w, magnetOpts{maxAlive: 3})
			}
			b := spawnTestBullet(t, w, 100, 0, -50, 0)

			NewMagnetSystem(nil).Update(w, &ecs.Tick{Dt: 1.0 / 60})

			vel, _ := ecs.Get(w, b, component.VelocityComponent)
			if vel.X != -50 || vel.Y != 0 {
				t.Fatalf("bullet velocity changed to %+v", *vel)
			}
		})
	}
}
