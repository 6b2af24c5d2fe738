package system

import (
	"github.com/milk9111/magnetgun/common"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"go.uber.org/zap"
)

// LifetimeSystem counts down projectile lifetimes and removes projectiles
// whose time is up.
type LifetimeSystem struct {
	log *zap.Logger
}

func NewLifetimeSystem(log *zap.Logger) *LifetimeSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &LifetimeSystem{log: log.Named("lifetime")}
}

func (s *LifetimeSystem) Update(w *ecs.World, tick *ecs.Tick) {
	if w == nil || tick == nil {
		return
	}

	ecs.ForEach(w, component.LifetimeComponent, func(e ecs.Entity, lt *component.Lifetime) {
		lt.Remaining -= tick.Dt
		if lt.Remaining > common.TimeEpsilon {
			return
		}
		ecs.DestroyEntity(w, e)
		s.log.Debug("expired", zap.Stringer("entity", e), zap.Float64("lifetime", lt.Total))
	})
}
