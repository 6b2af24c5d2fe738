package component

import "image/color"

// Sprite is a solid-colored rectangle drawn centered on the transform.
type Sprite struct {
	Color  color.RGBA
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
