package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/magnetgun/common"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/ecs/entity"
	"go.uber.org/zap"
)

// ProjectileSpawner builds the entity for a fired shot.
type ProjectileSpawner interface {
	Spawn(w *ecs.World, shot entity.Shot) (ecs.Entity, error)
}

// WeaponSystem ticks every weapon's cooldown, applies equip toggles and turns
// just-pressed fire keys into projectiles aimed at the cursor.
type WeaponSystem struct {
	spawner ProjectileSpawner
	log     *zap.Logger
}

func NewWeaponSystem(spawner ProjectileSpawner, log *zap.Logger) *WeaponSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeaponSystem{spawner: spawner, log: log.Named("weapon")}
}

func (s *WeaponSystem) Update(w *ecs.World, tick *ecs.Tick) {
	if s == nil || w == nil || tick == nil {
		return
	}

	cursor, hasCursor := CursorWorld(w, tick.Input)

	ecs.ForEach(w, component.LoadoutComponent, func(owner ecs.Entity, loadout *component.Loadout) {
		for i := range loadout.Weapons {
			wpn := &loadout.Weapons[i]

			if tick.Input.JustPressed(wpn.EquipKey) {
				wpn.Equipped = !wpn.Equipped
				s.log.Debug("equip toggled", zap.String("weapon", wpn.Name), zap.Bool("equipped", wpn.Equipped))
			}

			// cooldown runs whether or not the slot is equipped
			ready := wpn.Cooldown.Tick(tick.Dt)
			if !ready || !wpn.Equipped || !tick.Input.JustPressed(wpn.Key) {
				continue
			}
			if !hasCursor {
				if _, ok := w.First(component.CameraComponent.Kind()); !ok {
					s.log.Warn("no camera, shot skipped", zap.String("weapon", wpn.Name))
				}
				continue
			}

			origin, ok := MuzzleOrigin(w, owner, *wpn)
			if !ok {
				continue
			}
			dir := common.Normalize(cursor.Sub(origin))
			if dir == (mgl64.Vec2{}) {
				continue
			}

			if s.spawner == nil {
				continue
			}
			e, err := s.spawner.Spawn(w, entity.Shot{
				Kind:      wpn.Kind,
				Owner:     owner,
				Origin:    origin,
				Direction: dir,
				Speed:     wpn.Speed,
				Friction:  wpn.Friction,
			})
			if err != nil {
				// nothing left the muzzle: the cooldown and any live magnet stay
				s.log.Error("spawn projectile", zap.String("weapon", wpn.Name), zap.Error(err))
				continue
			}
			if wpn.Kind == component.ProjectileMagnet {
				s.despawnMagnets(w, e)
			}
			wpn.Cooldown.Reset()
			s.log.Debug("fired",
				zap.String("weapon", wpn.Name),
				zap.Stringer("kind", wpn.Kind),
				zap.Stringer("entity", e),
			)
		}
	})
}

// despawnMagnets keeps the magnet a singleton: every magnet except keep is
// removed in the same step keep was spawned.
func (s *WeaponSystem) despawnMagnets(w *ecs.World, keep ecs.Entity) {
	for _, e := range w.Query(component.MagnetComponent.Kind()) {
		if e == keep {
			continue
		}
		if ecs.DestroyEntity(w, e) {
			s.log.Debug("magnet replaced", zap.Stringer("entity", e))
		}
	}
}

// MuzzleOrigin is the world position of a weapon slot: the owner's position
// plus the slot offset turned by the owner's facing.
func MuzzleOrigin(w *ecs.World, owner ecs.Entity, wpn component.Weapon) (mgl64.Vec2, bool) {
	transform, ok := ecs.Get(w, owner, component.TransformComponent)
	if !ok {
		return mgl64.Vec2{}, false
	}
	offset := mgl64.Vec2{wpn.OffsetX, wpn.OffsetY}
	if facing, ok := ecs.Get(w, owner, component.FacingComponent); ok {
		offset = common.Rotate(offset, facing.Angle)
	}
	return mgl64.Vec2{transform.X, transform.Y}.Add(offset), true
}
