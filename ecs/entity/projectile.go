package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/prefabs"
)

// Shot is one trigger pull: what to fire, from where, and in which direction.
// Direction is unit length.
type Shot struct {
	Kind      component.ProjectileKind
	Owner     ecs.Entity
	Origin    mgl64.Vec2
	Direction mgl64.Vec2
	Speed     float64
	Friction  float64
}

var projectilePrefabs = map[component.ProjectileKind]string{
	component.ProjectileBullet:     "bullet.yaml",
	component.ProjectileWeakBullet: "weak_bullet.yaml",
	component.ProjectileMagnet:     "magnet.yaml",
}

type projectilePrefab struct {
	path         string
	spec         prefabs.EntityBuildSpec
	muzzleOffset float64
}

// ProjectileFactory spawns projectiles from prefabs loaded once up front, so
// firing never touches the disk.
type ProjectileFactory struct {
	prefabs map[component.ProjectileKind]projectilePrefab
}

func NewProjectileFactory() (*ProjectileFactory, error) {
	f := &ProjectileFactory{prefabs: make(map[component.ProjectileKind]projectilePrefab, len(projectilePrefabs))}
	for kind, path := range projectilePrefabs {
		spec, err := prefabs.LoadEntityBuildSpec(path)
		if err != nil {
			return nil, fmt.Errorf("projectile factory: %w", err)
		}
		ps, err := prefabs.DecodeComponentSpec[projectileSpec](spec.Components["projectile"])
		if err != nil {
			return nil, fmt.Errorf("projectile factory: %q: decode projectile: %w", path, err)
		}
		declared, err := component.ParseProjectileKind(ps.Kind)
		if err != nil {
			return nil, fmt.Errorf("projectile factory: %q: %w", path, err)
		}
		if declared != kind {
			return nil, fmt.Errorf("projectile factory: %q declares kind %s, want %s", path, declared, kind)
		}
		f.prefabs[kind] = projectilePrefab{path: path, spec: spec, muzzleOffset: ps.MuzzleOffset}
	}
	return f, nil
}

// Spawn dispatches on the shot's projectile kind.
func (f *ProjectileFactory) Spawn(w *ecs.World, shot Shot) (ecs.Entity, error) {
	switch shot.Kind {
	case component.ProjectileBullet:
		return f.SpawnBullet(w, shot)
	case component.ProjectileWeakBullet:
		return f.SpawnWeakBullet(w, shot)
	case component.ProjectileMagnet:
		return f.SpawnMagnet(w, shot)
	default:
		return 0, fmt.Errorf("spawn projectile: unknown kind %s", shot.Kind)
	}
}

func (f *ProjectileFactory) SpawnBullet(w *ecs.World, shot Shot) (ecs.Entity, error) {
	return f.spawn(w, component.ProjectileBullet, shot)
}

// SpawnWeakBullet spawns a bullet that dies on its first contact.
func (f *ProjectileFactory) SpawnWeakBullet(w *ecs.World, shot Shot) (ecs.Entity, error) {
	return f.spawn(w, component.ProjectileWeakBullet, shot)
}

// SpawnMagnet spawns a magnet. Callers remove any previous magnet first.
func (f *ProjectileFactory) SpawnMagnet(w *ecs.World, shot Shot) (ecs.Entity, error) {
	return f.spawn(w, component.ProjectileMagnet, shot)
}

// MuzzleOffset is the distance along the aim direction a kind spawns at.
func (f *ProjectileFactory) MuzzleOffset(kind component.ProjectileKind) float64 {
	return f.prefabs[kind].muzzleOffset
}

func (f *ProjectileFactory) spawn(w *ecs.World, kind component.ProjectileKind, shot Shot) (ecs.Entity, error) {
	if f == nil {
		return 0, fmt.Errorf("spawn %s: factory is nil", kind)
	}
	p, ok := f.prefabs[kind]
	if !ok {
		return 0, fmt.Errorf("spawn %s: no prefab", kind)
	}

	e, err := buildFromSpec(w, p.path, p.spec)
	if err != nil {
		return 0, fmt.Errorf("spawn %s: %w", kind, err)
	}

	pos := shot.Origin.Add(shot.Direction.Mul(p.muzzleOffset))
	if err := SetEntityTransform(w, e, pos.X(), pos.Y(), 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn %s: set transform: %w", kind, err)
	}

	vel := shot.Direction.Mul(shot.Speed)
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{X: vel.X(), Y: vel.Y()}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn %s: set velocity: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.ProjectileFrictionComponent, &component.ProjectileFriction{Value: shot.Friction}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn %s: set friction: %w", kind, err)
	}
	return e, nil
}
