package system

import (
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"go.uber.org/zap"
)

// ContactDespawnSystem removes entities marked DespawnOnContact on the first
// collision start reported for them.
type ContactDespawnSystem struct {
	log *zap.Logger
}

func NewContactDespawnSystem(log *zap.Logger) *ContactDespawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactDespawnSystem{log: log.Named("contact")}
}

func (s *ContactDespawnSystem) Update(w *ecs.World, _ *ecs.Tick) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Items() {
		if evt.Kind != ecs.CollisionStarted {
			continue
		}
		if !ecs.Has(w, evt.Entity, component.DespawnOnContactComponent) {
			continue
		}
		if ecs.DestroyEntity(w, evt.Entity) {
			s.log.Debug("despawned on contact", zap.Stringer("entity", evt.Entity), zap.Stringer("other", evt.Other))
		}
	}
}
