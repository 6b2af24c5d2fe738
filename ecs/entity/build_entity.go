package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/prefabs"
)

type playerSpec = prefabs.PlayerComponentSpec
type controlsSpec = prefabs.ControlsComponentSpec
type transformSpec = prefabs.TransformComponentSpec
type spriteSpec = prefabs.SpriteComponentSpec
type renderLayerSpec = prefabs.RenderLayerComponentSpec
type cameraSpec = prefabs.CameraComponentSpec
type physicsBodySpec = prefabs.PhysicsBodyComponentSpec
type collisionLayerSpec = prefabs.CollisionLayerComponentSpec
type loadoutSpec = prefabs.LoadoutComponentSpec
type projectileSpec = prefabs.ProjectileComponentSpec
type lifetimeSpec = prefabs.LifetimeComponentSpec
type magnetSpec = prefabs.MagnetComponentSpec

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":         addPlayerTag,
	"camera_tag":         addCameraTag,
	"terrain_tag":        addTerrainTag,
	"player":             addPlayer,
	"controls":           addControls,
	"transform":          addTransform,
	"velocity":           addVelocity,
	"facing":             addFacing,
	"sprite":             addSprite,
	"render_layer":       addRenderLayer,
	"camera":             addCamera,
	"physics_body":       addPhysicsBody,
	"collision_layer":    addCollisionLayer,
	"collision_events":   addCollisionEvents,
	"despawn_on_contact": addDespawnOnContact,
	"loadout":            addLoadout,
	"projectile":         addProjectile,
	"lifetime":           addLifetime,
	"magnet":             addMagnet,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"terrain_tag",
	"player",
	"controls",
	"transform",
	"velocity",
	"facing",
	"sprite",
	"render_layer",
	"camera",
	"collision_layer",
	"collision_events",
	"despawn_on_contact",
	"physics_body",
	"loadout",
	"projectile",
	"lifetime",
	"magnet",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent, t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CameraTagComponent, &component.CameraTag{})
}

func addTerrainTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.TerrainTagComponent, &component.TerrainTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed <= 0 {
		return fmt.Errorf("player move_speed must be positive")
	}
	return ecs.Add(w, e, component.PlayerComponent, &component.Player{
		MoveSpeed:    spec.MoveSpeed,
		Acceleration: spec.Acceleration,
		Friction:     spec.Friction,
		StopSpeed:    spec.StopSpeed,
	})
}

func addControls(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[controlsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controls spec: %w", err)
	}
	return ecs.Add(w, e, component.ControlsComponent, &component.Controls{
		Up:    spec.Up,
		Down:  spec.Down,
		Left:  spec.Left,
		Right: spec.Right,
	})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.VelocityComponent, &component.Velocity{})
}

func addFacing(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.FacingComponent, &component.Facing{Orientation: mgl64.QuatIdent()})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Color:  spec.Color.RGBAColor(),
		Width:  spec.Width,
		Height: spec.Height,
	})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.Index})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent, &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       zoom,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	kind, err := parseBodyKind(spec.Kind)
	if err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("physics body needs a positive width and height")
	}
	if kind == component.BodyDynamic && spec.Mass <= 0 {
		spec.Mass = 1
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Kind:         kind,
		Width:        spec.Width,
		Height:       spec.Height,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		Elasticity:   spec.Elasticity,
		LockRotation: spec.LockRotation,
	})
}

func parseBodyKind(s string) (component.BodyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dynamic":
		return component.BodyDynamic, nil
	case "kinematic":
		return component.BodyKinematic, nil
	case "static":
		return component.BodyStatic, nil
	default:
		return 0, fmt.Errorf("unknown body kind %q", s)
	}
}

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	if spec.Profile != "" {
		layer, err := component.ProfileFor(component.Profile(spec.Profile))
		if err != nil {
			return err
		}
		return ecs.Add(w, e, component.CollisionLayerComponent, &layer)
	}
	layer := component.CollisionLayer{Category: spec.Category, Mask: spec.Mask}.Normalized()
	return ecs.Add(w, e, component.CollisionLayerComponent, &layer)
}

func addCollisionEvents(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CollisionEventsComponent, &component.CollisionEvents{})
}

func addDespawnOnContact(w *ecs.World, e ecs.Entity, _ any) error {
	// a contact can only be noticed if it is reported
	if err := addCollisionEvents(w, e, nil); err != nil {
		return err
	}
	return ecs.Add(w, e, component.DespawnOnContactComponent, &component.DespawnOnContact{})
}

func addLoadout(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[loadoutSpec](raw)
	if err != nil {
		return fmt.Errorf("decode loadout spec: %w", err)
	}
	loadout, err := buildLoadout(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.LoadoutComponent, loadout)
}

func addProjectile(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	kind, err := component.ParseProjectileKind(spec.Kind)
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ProjectileComponent, &component.Projectile{Kind: kind}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ProjectileFrictionComponent, &component.ProjectileFriction{}); err != nil {
		return err
	}
	if spec.Attracted {
		return ecs.Add(w, e, component.BulletTagComponent, &component.BulletTag{})
	}
	return nil
}

func addLifetime(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[lifetimeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode lifetime spec: %w", err)
	}
	if spec.Seconds <= 0 {
		return fmt.Errorf("lifetime must be positive")
	}
	lt := component.NewLifetime(spec.Seconds)
	return ecs.Add(w, e, component.LifetimeComponent, &lt)
}

func addMagnet(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[magnetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode magnet spec: %w", err)
	}
	if err := ecs.Add(w, e, component.MagnetComponent, &component.Magnet{
		SettleSpeed: spec.SettleSpeed,
		AgingStep:   spec.AgingStep,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.MagnetStrengthComponent, &component.MagnetStrength{Value: spec.Strength}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.MagnetAliveTimeComponent, &component.MagnetAliveTime{Max: spec.AliveMax})
}
