package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/common"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

// squishSpeed is the speed at which the tilt saturates.
const squishSpeed = 500.0

// FacingSystem turns the player toward the cursor. Sprites face +Y, hence the
// quarter turn.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (s *FacingSystem) Update(w *ecs.World, tick *ecs.Tick) {
	if w == nil || tick == nil {
		return
	}
	cursor, ok := CursorWorld(w, tick.Input)
	if !ok {
		return
	}

	ecs.ForEach3(w,
		component.PlayerTagComponent,
		component.TransformComponent,
		component.FacingComponent,
		func(_ ecs.Entity, _ *component.PlayerTag, transform *component.Transform, facing *component.Facing) {
			dx := cursor.X() - transform.X
			dy := cursor.Y() - transform.Y
			if dx == 0 && dy == 0 {
				return
			}
			facing.Angle = math.Atan2(dy, dx) - math.Pi/2
			transform.Rotation = facing.Angle
			facing.Orientation = orientation(*facing)
		},
	)
}

// SquishSystem tilts a moving entity around its planar axes in proportion to
// its velocity. It must run after FacingSystem.
type SquishSystem struct{}

func NewSquishSystem() *SquishSystem {
	return &SquishSystem{}
}

func (s *SquishSystem) Update(w *ecs.World, _ *ecs.Tick) {
	if w == nil {
		return
	}

	ecs.ForEach2(w,
		component.FacingComponent,
		component.VelocityComponent,
		func(_ ecs.Entity, facing *component.Facing, vel *component.Velocity) {
			facing.TiltX = common.Clamp(vel.Y/squishSpeed, 0, 1)
			facing.TiltY = common.Clamp(vel.X/squishSpeed, 0, 1)
			facing.Orientation = orientation(*facing)
		},
	)
}

func orientation(f component.Facing) mgl64.Quat {
	return mgl64.AnglesToQuat(f.TiltX, f.TiltY, f.Angle, mgl64.XYZ)
}
