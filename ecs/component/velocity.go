package component

import "math"

// Velocity is the planar linear velocity in units per second. Gameplay systems
// write it; the physics step reads it and writes back the integrated result.
type Velocity struct {
	X float64
	Y float64
}

// Speed returns the planar speed.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.X, v.Y)
}

var VelocityComponent = NewComponent[Velocity]()
