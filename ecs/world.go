package ecs

import "github.com/milk9111/magnetgun/ecs/component"

// World owns entities, their components, and the collision event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) store {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

func storeFor[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	set, _ := s.(*sparseSet[T])
	return set
}

func lookupStore[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	s := w.store(kind.ID())
	if s == nil {
		return nil
	}
	set, _ := s.(*sparseSet[T])
	return set
}
