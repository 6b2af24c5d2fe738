package entity

import (
	"fmt"

	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/prefabs"
)

func buildLoadout(spec loadoutSpec) (*component.Loadout, error) {
	loadout := &component.Loadout{Weapons: make([]component.Weapon, 0, len(spec.Weapons))}
	seen := make(map[string]bool, len(spec.Weapons))
	for i, ws := range spec.Weapons {
		if ws.Name == "" {
			return nil, fmt.Errorf("weapon %d: missing name", i)
		}
		if seen[ws.Name] {
			return nil, fmt.Errorf("weapon %q: duplicate name", ws.Name)
		}
		seen[ws.Name] = true

		kind, err := component.ParseProjectileKind(ws.Projectile)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", ws.Name, err)
		}
		if ws.Key == "" {
			return nil, fmt.Errorf("weapon %q: missing key", ws.Name)
		}
		if ws.Friction < 0 || ws.Friction > 1 {
			return nil, fmt.Errorf("weapon %q: friction %v outside [0, 1]", ws.Name, ws.Friction)
		}

		equipped := true
		if ws.Equipped != nil {
			equipped = *ws.Equipped
		}
		loadout.Weapons = append(loadout.Weapons, component.Weapon{
			Name:     ws.Name,
			Kind:     kind,
			Cooldown: component.NewCooldown(ws.Cooldown),
			Friction: ws.Friction,
			Speed:    ws.Speed,
			Key:      ws.Key,
			EquipKey: ws.EquipKey,
			Equipped: equipped,
			OffsetX:  ws.OffsetX,
			OffsetY:  ws.OffsetY,
		})
	}
	return loadout, nil
}

// ReloadLoadout re-reads the loadout tuning from a prefab and applies it to the
// owner's live weapons. Slots are matched by name; equip state and running
// cooldowns are kept. It returns the number of slots updated.
func ReloadLoadout(w *ecs.World, owner ecs.Entity, prefabPath string) (int, error) {
	loadout, ok := ecs.Get(w, owner, component.LoadoutComponent)
	if !ok {
		return 0, fmt.Errorf("reload loadout: entity %v has no loadout", owner)
	}

	spec, err := prefabs.LoadLoadoutSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("reload loadout: %w", err)
	}
	fresh, err := buildLoadout(spec)
	if err != nil {
		return 0, fmt.Errorf("reload loadout: %q: %w", prefabPath, err)
	}

	updated := 0
	for _, tuned := range fresh.Weapons {
		live, ok := loadout.Weapon(tuned.Name)
		if !ok {
			continue
		}
		live.Speed = tuned.Speed
		live.Friction = tuned.Friction
		live.Key = tuned.Key
		live.EquipKey = tuned.EquipKey
		live.OffsetX = tuned.OffsetX
		live.OffsetY = tuned.OffsetY
		live.Cooldown.SetTotal(tuned.Cooldown.Total)
		updated++
	}
	return updated, nil
}
