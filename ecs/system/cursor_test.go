package system

import (
	"testing"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

func TestScreenToWorld(t *testing.T) {
	tests := []struct {
		name         string
		camX, camY   float64
		zoom         float64
		sx, sy       float64
		wantX, wantY float64
	}{
		{"center", 0, 0, 1, 640, 360, 0, 0},
		{"top_left", 0, 0, 1, 0, 0, -640, -360},
		{"bottom_right", 0, 0, 1, 1280, 720, 640, 360},
		{"camera_offset", 100, -50, 1, 640, 360, 100, -50},
		{"zoomed", 0, 0, 2, 1280, 360, 320, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ScreenToWorld(tc.camX, tc.camY, tc.zoom, tc.sx, tc.sy, viewW, viewH)
			if !ok {
				t.Fatal("projection failed")
			}
			if !approx(got.X(), tc.wantX, 1e-6) || !approx(got.Y(), tc.wantY, 1e-6) {
				t.Fatalf("ScreenToWorld = %v, want (%v, %v)", got, tc.wantX, tc.wantY)
			}

			sx, sy := WorldToScreen(tc.camX, tc.camY, tc.zoom, got.X(), got.Y(), viewW, viewH)
			if !approx(sx, tc.sx, 1e-6) || !approx(sy, tc.sy, 1e-6) {
				t.Fatalf("WorldToScreen = (%v, %v), want (%v, %v)", sx, sy, tc.sx, tc.sy)
			}
		})
	}
}

func TestCursorWorldNeedsCameraAndPointer(t *testing.T) {
	w := ecs.NewWorld()
	if _, ok := CursorWorld(w, cursorAt(10, 10)); ok {
		t.Fatal("expected no cursor without a camera")
	}

	cam := newCamera(t, w)
	if _, ok := CursorWorld(w, ecs.Input{ViewportW: viewW, ViewportH: viewH}); ok {
		t.Fatal("expected no cursor without a pointer")
	}

	tr, _ := ecs.Get(w, cam, component.TransformComponent)
	tr.X, tr.Y = 50, 50
	got, ok := CursorWorld(w, cursorAt(10, -10))
	if !ok {
		t.Fatal("expected a cursor position")
	}
	if !approx(got.X(), 60, 1e-6) || !approx(got.Y(), 40, 1e-6) {
		t.Fatalf("cursor = %v, want (60, 40)", got)
	}
}
