package component

// Transform is the world placement of an entity. X and Y are the center of the
// entity in screen-down world units.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
