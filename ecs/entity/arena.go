package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/prefabs"
)

// NewArena spawns the static terrain described by arena.yaml.
func NewArena(w *ecs.World) ([]ecs.Entity, error) {
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load spec: %w", err)
	}
	return BuildArena(w, spec)
}

func BuildArena(w *ecs.World, spec *prefabs.ArenaSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("arena: spec is nil")
	}

	var out []ecs.Entity
	for i, b := range spec.Walls {
		e, err := newBlock(w, b, component.ProfileWalls, spec.WallColor.RGBAColor())
		if err != nil {
			return out, fmt.Errorf("arena: wall %d: %w", i, err)
		}
		out = append(out, e)
	}
	for i, b := range spec.Passthrough {
		e, err := newBlock(w, b, component.ProfileMagnetPassthrough, spec.BlockColor.RGBAColor())
		if err != nil {
			return out, fmt.Errorf("arena: magnet passthrough block %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func newBlock(w *ecs.World, b prefabs.BlockSpec, profile component.Profile, c color.RGBA) (ecs.Entity, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return 0, fmt.Errorf("block needs a positive size, got %vx%v", b.Width, b.Height)
	}
	layer, err := component.ProfileFor(profile)
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	add := func(err error) error {
		if err != nil {
			ecs.DestroyEntity(w, e)
		}
		return err
	}
	if err := add(ecs.Add(w, e, component.TerrainTagComponent, &component.TerrainTag{})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.TransformComponent, &component.Transform{X: b.X, Y: b.Y, ScaleX: 1, ScaleY: 1})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Color: c, Width: b.Width, Height: b.Height})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{})); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.CollisionLayerComponent, &layer)); err != nil {
		return 0, err
	}
	if err := add(ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Kind:   component.BodyStatic,
		Width:  b.Width,
		Height: b.Height,
	})); err != nil {
		return 0, err
	}
	return e, nil
}
