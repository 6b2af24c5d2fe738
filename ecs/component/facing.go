package component

import "github.com/go-gl/mathgl/mgl64"

// Facing is the presentation orientation of an entity. Angle turns it toward
// the cursor; TiltX and TiltY are the cosmetic squish derived from velocity.
// Orientation is the composed rotation used by the renderer.
type Facing struct {
	Angle       float64
	TiltX       float64
	TiltY       float64
	Orientation mgl64.Quat
}

var FacingComponent = NewComponent[Facing]()
