package system

import (
	"math"
	"testing"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

const (
	viewW = 1280.0
	viewH = 720.0
)

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, h, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// newCamera places a camera at the world origin with a 1280x720 viewport.
func newCamera(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	cam := ecs.CreateEntity(w)
	add(t, w, cam, component.CameraComponent, &component.Camera{TargetName: "player", Zoom: 1})
	add(t, w, cam, component.TransformComponent, &component.Transform{})
	return cam
}

// cursorAt returns an input whose pointer sits over world point (x, y) for a
// camera at the origin.
func cursorAt(x, y float64) ecs.Input {
	in := ecs.Input{ViewportW: viewW, ViewportH: viewH}
	in.SetCursor(x+viewW/2, y+viewH/2)
	return in
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
