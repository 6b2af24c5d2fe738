package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

// CursorWorld projects the pointer through the active camera into world
// space. It reports false when there is no camera or no pointer.
func CursorWorld(w *ecs.World, in ecs.Input) (mgl64.Vec2, bool) {
	if w == nil || !in.HasCursor {
		return mgl64.Vec2{}, false
	}
	camX, camY, zoom, ok := ActiveCamera(w)
	if !ok {
		return mgl64.Vec2{}, false
	}
	return ScreenToWorld(camX, camY, zoom, in.CursorX, in.CursorY, in.ViewportW, in.ViewportH)
}

// ScreenToWorld unprojects a window pixel for a camera centered at camX, camY.
// Window Y grows downward, as does world Y.
func ScreenToWorld(camX, camY, zoom, sx, sy, viewW, viewH float64) (mgl64.Vec2, bool) {
	if viewW <= 0 || viewH <= 0 {
		return mgl64.Vec2{}, false
	}
	if zoom <= 0 {
		zoom = 1
	}
	proj := cameraProjection(camX, camY, zoom, viewW, viewH)
	// UnProject expects a bottom-left window origin.
	win := mgl64.Vec3{sx, viewH - sy, 0.5}
	obj, err := mgl64.UnProject(win, mgl64.Ident4(), proj, 0, 0, int(viewW), int(viewH))
	if err != nil {
		return mgl64.Vec2{}, false
	}
	return obj.Vec2(), true
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(camX, camY, zoom, x, y, viewW, viewH float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	proj := cameraProjection(camX, camY, zoom, viewW, viewH)
	win := mgl64.Project(mgl64.Vec3{x, y, 0}, mgl64.Ident4(), proj, 0, 0, int(viewW), int(viewH))
	return win.X(), viewH - win.Y()
}

func cameraProjection(camX, camY, zoom, viewW, viewH float64) mgl64.Mat4 {
	halfW := viewW / 2 / zoom
	halfH := viewH / 2 / zoom
	// bottom and top are swapped so world Y points down the screen
	return mgl64.Ortho2D(camX-halfW, camX+halfW, camY+halfH, camY-halfH)
}

// ActiveCamera returns the position and zoom of the first camera in the world.
func ActiveCamera(w *ecs.World) (x, y, zoom float64, ok bool) {
	camEntity, found := w.First(component.CameraComponent.Kind())
	if !found {
		return 0, 0, 0, false
	}
	transform, found := ecs.Get(w, camEntity, component.TransformComponent)
	if !found {
		return 0, 0, 0, false
	}
	zoom = 1
	if cam, found := ecs.Get(w, camEntity, component.CameraComponent); found && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return transform.X, transform.Y, zoom, true
}
