package ecs

import "sort"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput       Phase = iota // equip toggles, control state
	PhaseUpdate                   // movement, weapons, lifetimes
	PhasePrePhysics               // forces that read this tick's velocities
	PhasePhysics                  // substrate step
	PhasePostPhysics              // reactions to collision events
	PhasePresent                  // per-frame presentation (facing, tilt, camera)
)

// System updates a world once per tick.
type System interface {
	Update(w *World, tick *Tick)
}

type scheduled struct {
	phase  Phase
	order  int
	system System
}

// Scheduler runs systems in phase order. Systems registered in the same phase
// run in registration order.
type Scheduler struct {
	systems []scheduled
	sorted  bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a system in the given phase.
func (s *Scheduler) Add(phase Phase, system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, scheduled{phase: phase, order: len(s.systems), system: system})
	s.sorted = false
}

// Update runs every system once and clears the tick's collision events.
func (s *Scheduler) Update(w *World, tick *Tick) {
	if s == nil || w == nil {
		return
	}
	s.ensureSorted()
	for _, sc := range s.systems {
		sc.system.Update(w, tick)
	}
	w.events.flush()
}

// Systems returns the registered systems in execution order.
func (s *Scheduler) Systems() []System {
	s.ensureSorted()
	out := make([]System, 0, len(s.systems))
	for _, sc := range s.systems {
		out = append(out, sc.system)
	}
	return out
}

func (s *Scheduler) ensureSorted() {
	if s.sorted {
		return
	}
	sort.SliceStable(s.systems, func(i, j int) bool {
		if s.systems[i].phase != s.systems[j].phase {
			return s.systems[i].phase < s.systems[j].phase
		}
		return s.systems[i].order < s.systems[j].order
	})
	s.sorted = true
}
