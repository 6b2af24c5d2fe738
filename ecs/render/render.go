package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/ecs/system"
)

const crosshairSize = 6

// Renderer draws every entity with a Transform and a Sprite as a solid
// rectangle, through the active camera.
type Renderer struct {
	pixel *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	view := newViewport(w, screen)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := layerOf(w, entities[i])
		lj := layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Width <= 0 || s.Height <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Width, s.Height)
		op.GeoM.Translate(-s.Width/2, -s.Height/2)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)

		if f, ok := ecs.Get(w, e, component.FacingComponent); ok && f.Orientation.Len() > 0 {
			op.GeoM.Concat(orientationGeoM(f.Orientation))
		} else {
			op.GeoM.Rotate(t.Rotation)
		}

		op.GeoM.Scale(view.zoom, view.zoom)
		op.GeoM.Translate(view.toScreen(t.X, t.Y))
		op.ColorScale.ScaleWithColor(s.Color)

		screen.DrawImage(r.pixel, op)
	}
}

// DrawCrosshair marks the pointer position.
func (r *Renderer) DrawCrosshair(screen *ebiten.Image, in ecs.Input) {
	if screen == nil || !in.HasCursor {
		return
	}
	c := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	x, y := float32(in.CursorX), float32(in.CursorY)
	vector.StrokeLine(screen, x-crosshairSize, y, x+crosshairSize, y, 1, c, false)
	vector.StrokeLine(screen, x, y-crosshairSize, x, y+crosshairSize, 1, c, false)
}

// orientationGeoM flattens a 3D orientation onto the screen plane. Tilt about
// X or Y shows up as foreshortening of the rectangle.
func orientationGeoM(q mgl64.Quat) ebiten.GeoM {
	m := q.Normalize().Mat4()
	var g ebiten.GeoM
	g.SetElement(0, 0, m.At(0, 0))
	g.SetElement(0, 1, m.At(0, 1))
	g.SetElement(1, 0, m.At(1, 0))
	g.SetElement(1, 1, m.At(1, 1))
	return g
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
		return layer.Index
	}
	return 0
}

type viewport struct {
	camX, camY, zoom float64
	w, h             float64
}

func newViewport(w *ecs.World, screen *ebiten.Image) viewport {
	b := screen.Bounds()
	v := viewport{zoom: 1, w: float64(b.Dx()), h: float64(b.Dy())}
	if x, y, zoom, ok := system.ActiveCamera(w); ok {
		v.camX, v.camY, v.zoom = x, y, zoom
	}
	return v
}

func (v viewport) toScreen(x, y float64) (float64, float64) {
	return system.WorldToScreen(v.camX, v.camY, v.zoom, x, y, v.w, v.h)
}
