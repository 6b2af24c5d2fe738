package system

import (
	"testing"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

func TestCameraHardFollow(t *testing.T) {
	w := ecs.NewWorld()
	cam := newCamera(t, w)
	p := ecs.CreateEntity(w)
	add(t, w, p, component.PlayerTagComponent, &component.PlayerTag{})
	add(t, w, p, component.TransformComponent, &component.Transform{X: 40, Y: -30})

	sys := NewCameraSystem(nil)
	for _, pos := range [][2]float64{{40, -30}, {1000, 5}, {-2, -2}} {
		tr, _ := ecs.Get(w, p, component.TransformComponent)
		tr.X, tr.Y = pos[0], pos[1]

		sys.Update(w, &ecs.Tick{})

		camTr, _ := ecs.Get(w, cam, component.TransformComponent)
		if camTr.X != pos[0] || camTr.Y != pos[1] {
			t.Fatalf("camera at (%v, %v), want %v", camTr.X, camTr.Y, pos)
		}
	}
}

func TestCameraWithoutCamera(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewCameraSystem(nil)
	sys.Update(w, &ecs.Tick{})
	sys.Update(w, &ecs.Tick{})
	if !sys.warned {
		t.Fatal("missing camera was not reported")
	}
}
