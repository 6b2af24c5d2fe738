package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetgun/common"
	"github.com/milk9111/magnetgun/ecs"
)

const debugStroke = 1

var (
	debugStaticColor    = cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.8}
	debugKinematicColor = cp.FColor{R: 0.3, G: 0.6, B: 1, A: 0.9}
	debugDynamicColor   = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugSleepingColor  = cp.FColor{R: 0.2, G: 0.5, B: 0.2, A: 0.6}
)

// DrawPhysicsDebug outlines every collider in the space, colored by body kind,
// and marks the velocity of moving bodies.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	d := &debugDrawer{screen: screen, view: newViewport(w, screen)}
	cp.DrawSpace(space, d)

	space.EachBody(func(body *cp.Body) {
		if body.GetType() != cp.BODY_DYNAMIC {
			return
		}
		pos := body.Position()
		// a quarter second of travel
		tip := pos.Add(body.Velocity().Mult(0.25))
		d.line(pos, tip, cp.FColor{R: 1, G: 0.85, B: 0.2, A: 0.9})
	})
}

// debugDrawer implements cp.Drawer on top of an ebiten image.
type debugDrawer struct {
	screen *ebiten.Image
	view   viewport
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.view.toScreen(pos.X, pos.Y)
	r := radius * d.view.zoom
	vector.StrokeCircle(d.screen, float32(x), float32(y), float32(r), debugStroke, toNRGBA(outline), false)
	d.line(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fill)
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, outline)
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count > len(verts) {
		count = len(verts)
	}
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], fill)
	}
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.toScreen(pos.X, pos.Y)
	half := float32(math.Max(size, 2) / 2)
	vector.DrawFilledRect(d.screen, float32(x)-half, float32(y)-half, 2*half, 2*half, toNRGBA(fill), false)
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return debugDynamicColor
}

func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil || shape.Body() == nil {
		return debugDynamicColor
	}
	body := shape.Body()
	switch {
	case body.GetType() == cp.BODY_STATIC:
		return debugStaticColor
	case body.GetType() == cp.BODY_KINEMATIC:
		return debugKinematicColor
	case body.IsSleeping():
		return debugSleepingColor
	default:
		return debugDynamicColor
	}
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) line(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.toScreen(a.X, a.Y)
	x2, y2 := d.view.toScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), debugStroke, toNRGBA(c), false)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(common.Clamp(float64(v), 0, 1) * 255)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
