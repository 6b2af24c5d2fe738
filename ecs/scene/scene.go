// Package scene assembles the playable world: terrain, camera, player and the
// fixed-step and presentation schedulers that drive them.
package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/magnetgun/ecs"
	"github.com/milk9111/magnetgun/ecs/component"
	"github.com/milk9111/magnetgun/ecs/entity"
	"github.com/milk9111/magnetgun/ecs/system"
	"github.com/milk9111/magnetgun/prefabs"
	"go.uber.org/zap"
)

type Options struct {
	// Dt is the simulated seconds per fixed step.
	Dt float64
	// Controls overrides the player's movement keys where non-empty.
	Controls component.Controls
}

type Scene struct {
	World  *ecs.World
	Player ecs.Entity
	Camera ecs.Entity

	dt      float64
	fixed   *ecs.Scheduler
	present *ecs.Scheduler
	physics *system.PhysicsSystem
	steps   uint64

	log *zap.Logger
}

func New(opts Options, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Dt <= 0 {
		return nil, fmt.Errorf("scene: dt must be positive, got %v", opts.Dt)
	}

	w := ecs.NewWorld()

	terrain, err := entity.NewArena(w)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	camera, err := entity.NewCamera(w)
	if err != nil {
		return nil, fmt.Errorf("scene: camera: %w", err)
	}
	player, err := entity.NewPlayer(w, opts.Controls)
	if err != nil {
		return nil, fmt.Errorf("scene: player: %w", err)
	}
	factory, err := entity.NewProjectileFactory()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	physics := system.NewPhysicsSystem(log)

	fixed := ecs.NewScheduler()
	fixed.Add(ecs.PhaseInput, system.NewPlayerControllerSystem())
	// lifetime first: a projectile is not aged on the step it is fired
	fixed.Add(ecs.PhaseUpdate, system.NewLifetimeSystem(log))
	fixed.Add(ecs.PhaseUpdate, system.NewWeaponSystem(factory, log))
	fixed.Add(ecs.PhasePrePhysics, system.NewMagnetSystem(log))
	fixed.Add(ecs.PhasePhysics, physics)
	fixed.Add(ecs.PhasePostPhysics, system.NewContactDespawnSystem(log))

	// facing must run before squish; both write the player's orientation
	present := ecs.NewScheduler()
	present.Add(ecs.PhasePresent, system.NewFacingSystem())
	present.Add(ecs.PhasePresent, system.NewSquishSystem())
	present.Add(ecs.PhasePresent, system.NewCameraSystem(log))

	log.Info("scene ready",
		zap.Int("terrain", len(terrain)),
		zap.Uint64("player", uint64(player)),
		zap.Float64("dt", opts.Dt),
	)

	return &Scene{
		World:   w,
		Player:  player,
		Camera:  camera,
		dt:      opts.Dt,
		fixed:   fixed,
		present: present,
		physics: physics,
		log:     log.Named("scene"),
	}, nil
}

// Step advances the simulation by one fixed tick.
func (s *Scene) Step(in ecs.Input) {
	s.fixed.Update(s.World, &ecs.Tick{Dt: s.dt, Input: in})
	s.steps++
}

// Present runs the per-frame presentation pass. dt is the frame time.
func (s *Scene) Present(in ecs.Input, dt float64) {
	s.present.Update(s.World, &ecs.Tick{Dt: dt, Input: in})
}

func (s *Scene) Dt() float64 { return s.dt }

func (s *Scene) Steps() uint64 { return s.steps }

func (s *Scene) Space() *cp.Space { return s.physics.Space() }

// ReloadPrefab applies an edited prefab to the live world. Only the player
// prefab carries tuning that can change at runtime; other files are ignored.
func (s *Scene) ReloadPrefab(path string) error {
	if prefabs.Name(path) != entity.PlayerPrefab {
		s.log.Debug("prefab change ignored", zap.String("path", path))
		return nil
	}
	n, err := entity.ReloadLoadout(s.World, s.Player, entity.PlayerPrefab)
	if err != nil {
		return err
	}
	s.log.Info("loadout reloaded", zap.Int("weapons", n))
	return nil
}
