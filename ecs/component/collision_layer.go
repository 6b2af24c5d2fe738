package component

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Layer is a single collision layer bit.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerPlayer
	LayerWalls
	LayerMagnet
	LayerProjectiles
	LayerBullets
	LayerMagnetPassthrough
)

// AllLayers is every named layer.
const AllLayers = LayerDefault | LayerPlayer | LayerWalls | LayerMagnet | LayerProjectiles | LayerBullets | LayerMagnetPassthrough

// Profile names an entity category with a fixed collision filter.
type Profile string

const (
	ProfilePlayer            Profile = "player"
	ProfileMagnet            Profile = "magnet"
	ProfileBullet            Profile = "bullet"
	ProfileMagnetPassthrough Profile = "magnet-passthrough"
	ProfileWalls             Profile = "walls"
)

// CollisionLayer allows entities to declare a collision category and mask
// so the physics system can selectively enable/disable collisions between
// groups of objects.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. If zero,
	// the physics system will treat it as LayerDefault.
	Category uint32 `json:"category,omitempty"`
	// Mask is a bitmask of categories this entity should collide with. If
	// zero, the physics system will treat it as all-bits set (collide with all).
	Mask uint32 `json:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

var profiles = map[Profile]CollisionLayer{
	// Bullets never touch the player; the magnet does.
	ProfilePlayer: {
		Category: uint32(LayerPlayer),
		Mask:     uint32(LayerDefault | LayerWalls | LayerMagnet | LayerMagnetPassthrough),
	},
	// MagnetPassthrough is absent: magnets fly through that terrain.
	ProfileMagnet: {
		Category: uint32(LayerMagnet | LayerProjectiles),
		Mask:     uint32(LayerDefault | LayerWalls | LayerProjectiles | LayerPlayer | LayerBullets),
	},
	ProfileBullet: {
		Category: uint32(LayerBullets | LayerProjectiles),
		Mask:     uint32(LayerDefault | LayerWalls | LayerProjectiles | LayerMagnetPassthrough),
	},
	ProfileMagnetPassthrough: {
		Category: uint32(LayerMagnetPassthrough),
		Mask:     uint32(LayerDefault | LayerWalls | LayerProjectiles | LayerPlayer | LayerBullets),
	},
	ProfileWalls: {
		Category: uint32(LayerWalls),
		Mask:     uint32(AllLayers),
	},
}

// ProfileFor returns the collision filter of a category.
func ProfileFor(p Profile) (CollisionLayer, error) {
	layer, ok := profiles[Profile(strings.ToLower(string(p)))]
	if !ok {
		return CollisionLayer{}, fmt.Errorf("collision layer: unknown profile %q", p)
	}
	return layer, nil
}

// MustProfile is ProfileFor for the built-in profile constants.
func MustProfile(p Profile) CollisionLayer {
	layer, err := ProfileFor(p)
	if err != nil {
		panic(err)
	}
	return layer
}

// Normalized applies the zero-value defaults.
func (c CollisionLayer) Normalized() CollisionLayer {
	if c.Category == 0 {
		c.Category = uint32(LayerDefault)
	}
	if c.Mask == 0 {
		c.Mask = ^uint32(0)
	}
	return c
}

// Collides reports whether two filters accept each other. Both sides must list
// the other's category in their mask.
func (c CollisionLayer) Collides(other CollisionLayer) bool {
	a := c.Normalized()
	b := other.Normalized()
	return a.Category&b.Mask != 0 && b.Category&a.Mask != 0
}

// Filter converts the layer into a Chipmunk shape filter.
func (c CollisionLayer) Filter() cp.ShapeFilter {
	n := c.Normalized()
	return cp.ShapeFilter{
		Categories: uint(n.Category),
		Mask:       uint(n.Mask),
	}
}
