package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

type bodySpec struct {
	profile component.Profile
	kind    component.BodyKind
	x, y    float64
	size    float64
	report  bool
	despawn bool
}

func spawnBody(t *testing.T, w *ecs.World, s bodySpec) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	layer := component.MustProfile(s.profile)
	add(t, w, e, component.TransformComponent, &component.Transform{X: s.x, Y: s.y})
	add(t, w, e, component.VelocityComponent, &component.Velocity{})
	add(t, w, e, component.CollisionLayerComponent, &layer)
	add(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Kind:         s.kind,
		Width:        s.size,
		Height:       s.size,
		Mass:         1,
		LockRotation: true,
	})
	if s.report {
		add(t, w, e, component.CollisionEventsComponent, &component.CollisionEvents{})
	}
	if s.despawn {
		add(t, w, e, component.DespawnOnContactComponent, &component.DespawnOnContact{})
	}
	return e
}

func contactsOf(w *ecs.World, e ecs.Entity) []ecs.Entity {
	var others []ecs.Entity
	for _, evt := range w.Events().Items() {
		if evt.Entity == e && evt.Kind == ecs.CollisionStarted {
			others = append(others, evt.Other)
		}
	}
	return others
}

func TestPhysicsCollisionProfiles(t *testing.T) {
	tests := []struct {
		name  string
		a, b  bodySpec
		touch bool
	}{
		{
			name:  "bullet_ignores_player",
			a:     bodySpec{profile: component.ProfileBullet, size: 8, report: true},
			b:     bodySpec{profile: component.ProfilePlayer, x: 10, size: 32, report: true},
			touch: false,
		},
		{
			name:  "magnet_hits_player",
			a:     bodySpec{profile: component.ProfileMagnet, size: 16, report: true},
			b:     bodySpec{profile: component.ProfilePlayer, x: 10, size: 32, report: true},
			touch: true,
		},
		{
			name:  "magnet_passes_through_terrain",
			a:     bodySpec{profile: component.ProfileMagnet, size: 16, report: true},
			b:     bodySpec{profile: component.ProfileMagnetPassthrough, kind: component.BodyStatic, x: 10, size: 32, report: true},
			touch: false,
		},
		{
			name:  "bullet_hits_passthrough_terrain",
			a:     bodySpec{profile: component.ProfileBullet, size: 8, report: true},
			b:     bodySpec{profile: component.ProfileMagnetPassthrough, kind: component.BodyStatic, x: 10, size: 32, report: true},
			touch: true,
		},
		{
			name:  "bullet_hits_wall",
			a:     bodySpec{profile: component.ProfileBullet, size: 8, report: true},
			b:     bodySpec{profile: component.ProfileWalls, kind: component.BodyStatic, x: 10, size: 32, report: true},
			touch: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			a := spawnBody(t, w, tc.a)
			b := spawnBody(t, w, tc.b)

			NewPhysicsSystem(nil).Update(w, &ecs.Tick{Dt: 1.0 / 60})

			gotA := contactsOf(w, a)
			gotB := contactsOf(w, b)
			if tc.touch {
				if len(gotA) != 1 || gotA[0] != b || len(gotB) != 1 || gotB[0] != a {
					t.Fatalf("expected one contact each way, got %v and %v", gotA, gotB)
				}
				return
			}
			if len(gotA) != 0 || len(gotB) != 0 {
				t.Fatalf("expected no contact, got %v and %v", gotA, gotB)
			}
		})
	}
}

func TestPhysicsOnlyReportersGetEvents(t *testing.T) {
	w := ecs.NewWorld()
	bullet := spawnBody(t, w, bodySpec{profile: component.ProfileBullet, size: 8, report: true})
	wall := spawnBody(t, w, bodySpec{profile: component.ProfileWalls, kind: component.BodyStatic, x: 10, size: 32})

	NewPhysicsSystem(nil).Update(w, &ecs.Tick{Dt: 1.0 / 60})

	if got := contactsOf(w, bullet); len(got) != 1 {
		t.Fatalf("bullet contacts = %v, want 1", got)
	}
	if got := contactsOf(w, wall); len(got) != 0 {
		t.Fatalf("wall did not ask for events but got %v", got)
	}
}

func TestPhysicsIntegratesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnBody(t, w, bodySpec{profile: component.ProfileBullet, size: 8})
	vel, _ := ecs.Get(w, e, component.VelocityComponent)
	vel.X, vel.Y = 100, -40

	ps := NewPhysicsSystem(nil)
	ps.Update(w, &ecs.Tick{Dt: 0.5})

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if !approx(tr.X, 50, 1e-9) || !approx(tr.Y, -20, 1e-9) {
		t.Fatalf("position = (%v, %v), want (50, -20)", tr.X, tr.Y)
	}
	vel, _ = ecs.Get(w, e, component.VelocityComponent)
	if !approx(vel.X, 100, 1e-9) || !approx(vel.Y, -40, 1e-9) {
		t.Fatalf("velocity = %+v, want unchanged", *vel)
	}

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if body.Body == nil || body.Shape == nil {
		t.Fatal("physics body was not attached")
	}
}

func TestPhysicsBodyKindChange(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnBody(t, w, bodySpec{profile: component.ProfileMagnet, size: 16})
	vel, _ := ecs.Get(w, e, component.VelocityComponent)
	vel.X = 200

	ps := NewPhysicsSystem(nil)
	ps.Update(w, &ecs.Tick{Dt: 0.25})

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	body.Kind = component.BodyStatic
	vel.X = 0
	ps.Update(w, &ecs.Tick{Dt: 0.25})

	if got := body.Body.GetType(); got != cp.BODY_STATIC {
		t.Fatalf("body type = %v, want static", got)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	before := tr.X
	ps.Update(w, &ecs.Tick{Dt: 0.25})
	if tr.X != before {
		t.Fatalf("static body moved from %v to %v", before, tr.X)
	}
}

func TestPhysicsRemovesDeadBodies(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnBody(t, w, bodySpec{profile: component.ProfileBullet, size: 8})
	ps := NewPhysicsSystem(nil)
	ps.Update(w, &ecs.Tick{Dt: 1.0 / 60})
	if len(ps.entities) != 1 {
		t.Fatalf("tracked bodies = %d, want 1", len(ps.entities))
	}

	ecs.DestroyEntity(w, e)
	ps.Update(w, &ecs.Tick{Dt: 1.0 / 60})
	if len(ps.entities) != 0 || len(ps.shapes) != 0 {
		t.Fatalf("dead entity still tracked: %d bodies, %d shapes", len(ps.entities), len(ps.shapes))
	}
}

func TestWeakBulletDiesOnFirstContact(t *testing.T) {
	w := ecs.NewWorld()
	weak := spawnBody(t, w, bodySpec{profile: component.ProfileBullet, size: 8, report: true, despawn: true})
	bullet := spawnBody(t, w, bodySpec{profile: component.ProfileBullet, x: 200, size: 8, report: true})
	spawnBody(t, w, bodySpec{profile: component.ProfileWalls, kind: component.BodyStatic, x: 10, size: 32})

	sched := ecs.NewScheduler()
	sched.Add(ecs.PhasePostPhysics, NewContactDespawnSystem(nil))
	sched.Add(ecs.PhasePhysics, NewPhysicsSystem(nil))
	sched.Update(w, &ecs.Tick{Dt: 1.0 / 60})

	if ecs.IsAlive(w, weak) {
		t.Fatal("weak bullet survived a wall hit")
	}
	if !ecs.IsAlive(w, bullet) {
		t.Fatal("untouched bullet was removed")
	}
}
