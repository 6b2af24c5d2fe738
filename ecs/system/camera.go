package system

import (
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"go.uber.org/zap"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	warned       bool
	log          *zap.Logger
}

func NewCameraSystem(log *zap.Logger) *CameraSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CameraSystem{log: log.Named("camera")}
}

// Update hard-sets the camera position to its target's position.
func (cs *CameraSystem) Update(w *ecs.World, _ *ecs.Tick) {
	if w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			if !cs.warned {
				cs.log.Warn("no camera in world")
				cs.warned = true
			}
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
		if !ok {
			return
		}
		target, ok := findTarget(w, camComp.TargetName)
		if !ok {
			return
		}
		cs.targetEntity = target
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		if err := ecs.Add(w, cs.camEntity, component.TransformComponent, &component.Transform{X: targetTransform.X, Y: targetTransform.Y}); err != nil {
			panic("camera system: update transform: " + err.Error())
		}
		return
	}
	camTransform.X = targetTransform.X
	camTransform.Y = targetTransform.Y
}

func findTarget(w *ecs.World, name string) (ecs.Entity, bool) {
	switch name {
	case "", "player":
		return w.First(component.PlayerTagComponent.Kind())
	default:
		return 0, false
	}
}
