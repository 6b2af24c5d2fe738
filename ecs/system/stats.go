package system

import (
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
)

// MagnetState is the coarse phase of the live magnet, for display.
type MagnetState int

const (
	MagnetNone MagnetState = iota
	MagnetMoving
	MagnetAging
	MagnetSettled
)

func (s MagnetState) String() string {
	switch s {
	case MagnetMoving:
		return "moving"
	case MagnetAging:
		return "aging"
	case MagnetSettled:
		return "settled"
	default:
		return "none"
	}
}

type WeaponStats struct {
	Name      string
	Equipped  bool
	Remaining float64
	Total     float64
}

// Stats is a read-only summary of the simulation used by the debug HUD.
type Stats struct {
	Bullets     int
	WeakBullets int
	Magnets     int
	Magnet      MagnetState
	// MagnetAge is the alive time of a moving magnet.
	MagnetAge float64
	Weapons   []WeaponStats
}

func CollectStats(w *ecs.World) Stats {
	var st Stats
	if w == nil {
		return st
	}

	ecs.ForEach(w, component.ProjectileComponent, func(_ ecs.Entity, p *component.Projectile) {
		switch p.Kind {
		case component.ProjectileBullet:
			st.Bullets++
		case component.ProjectileWeakBullet:
			st.WeakBullets++
		case component.ProjectileMagnet:
			st.Magnets++
		}
	})

	if m, ok := w.First(component.MagnetComponent.Kind()); ok {
		st.Magnet = magnetState(w, m)
		if alive, ok := ecs.Get(w, m, component.MagnetAliveTimeComponent); ok {
			st.MagnetAge = alive.Current
		}
	}

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if loadout, ok := ecs.Get(w, player, component.LoadoutComponent); ok {
			for _, wpn := range loadout.Weapons {
				st.Weapons = append(st.Weapons, WeaponStats{
					Name:      wpn.Name,
					Equipped:  wpn.Equipped,
					Remaining: wpn.Cooldown.Remaining,
					Total:     wpn.Cooldown.Total,
				})
			}
		}
	}
	return st
}

func magnetState(w *ecs.World, m ecs.Entity) MagnetState {
	if body, ok := ecs.Get(w, m, component.PhysicsBodyComponent); ok && body.Kind == component.BodyStatic {
		return MagnetSettled
	}
	alive, ok := ecs.Get(w, m, component.MagnetAliveTimeComponent)
	if !ok {
		return MagnetSettled
	}
	if alive.Current > alive.Max {
		return MagnetAging
	}
	return MagnetMoving
}
