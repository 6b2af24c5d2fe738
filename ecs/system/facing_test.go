package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

func TestFacingPointsAtCursor(t *testing.T) {
	tests := []struct {
		name      string
		cx, cy    float64
		wantAngle float64
	}{
		{"right", 100, 0, -math.Pi / 2},
		{"down", 0, 100, 0},
		{"up_left", -100, -100, -5 * math.Pi / 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newCamera(t, w)
			p := ecs.CreateEntity(w)
			add(t, w, p, component.PlayerTagComponent, &component.PlayerTag{})
			add(t, w, p, component.TransformComponent, &component.Transform{})
			add(t, w, p, component.FacingComponent, &component.Facing{})

			NewFacingSystem().Update(w, &ecs.Tick{Input: cursorAt(tc.cx, tc.cy)})

			facing, _ := ecs.Get(w, p, component.FacingComponent)
			if !approx(facing.Angle, tc.wantAngle, 1e-9) {
				t.Fatalf("angle = %v, want %v", facing.Angle, tc.wantAngle)
			}
			// rotating the sprite's forward axis must land on the cursor direction
			fwd := facing.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
			dir := mgl64.Vec2{tc.cx, tc.cy}.Normalize()
			if !approx(fwd.X(), dir.X(), 1e-9) || !approx(fwd.Y(), dir.Y(), 1e-9) {
				t.Fatalf("forward = %v, want %v", fwd, dir)
			}
		})
	}
}

func TestFacingKeepsAngleWithoutCursor(t *testing.T) {
	w := ecs.NewWorld()
	newCamera(t, w)
	p := ecs.CreateEntity(w)
	add(t, w, p, component.PlayerTagComponent, &component.PlayerTag{})
	add(t, w, p, component.TransformComponent, &component.Transform{})
	add(t, w, p, component.FacingComponent, &component.Facing{Angle: 1})

	NewFacingSystem().Update(w, &ecs.Tick{})

	facing, _ := ecs.Get(w, p, component.FacingComponent)
	if facing.Angle != 1 {
		t.Fatalf("angle = %v, want unchanged 1", facing.Angle)
	}
}

func TestSquishTilt(t *testing.T) {
	tests := []struct {
		name         string
		vx, vy       float64
		wantX, wantY float64
	}{
		{"still", 0, 0, 0, 0},
		{"half", 250, 125, 0.25, 0.5},
		{"saturated", 1000, 900, 1, 1},
		{"negative_clamped", -300, -300, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			add(t, w, e, component.FacingComponent, &component.Facing{})
			add(t, w, e, component.VelocityComponent, &component.Velocity{X: tc.vx, Y: tc.vy})

			NewSquishSystem().Update(w, &ecs.Tick{})

			facing, _ := ecs.Get(w, e, component.FacingComponent)
			if facing.TiltX != tc.wantX || facing.TiltY != tc.wantY {
				t.Fatalf("tilt = (%v, %v), want (%v, %v)", facing.TiltX, facing.TiltY, tc.wantX, tc.wantY)
			}
		})
	}
}
