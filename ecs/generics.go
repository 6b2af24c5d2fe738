package ecs

import "github.com/milk9111/magnetgun/ecs/component"

// CreateEntity allocates a new entity in w.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// DestroyEntity removes e and all of its components from w.
func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

// IsAlive reports whether e is a live entity of w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity of w.
func Entities(w *World) []Entity {
	return w.Entities()
}

// Add attaches value to e, replacing any previous component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	set := storeFor(w, kind)
	if set == nil {
		return component.ErrInvalidComponentKind
	}
	set.set(e, value)
	return nil
}

// Remove detaches the component from e. It reports whether one was present.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	set := lookupStore(w, handle.Kind())
	if set == nil {
		return false
	}
	return set.remove(e)
}

// Has reports whether e carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	set := lookupStore(w, handle.Kind())
	return set != nil && set.has(e)
}

// Get returns the stored component of e. The pointer aliases the stored value.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	set := lookupStore(w, handle.Kind())
	if set == nil {
		return nil, false
	}
	return set.get(e)
}

// ForEach calls fn for every live entity carrying the component. The entity
// list is captured up front, so fn may destroy entities.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := lookupStore(w, handle.Kind())
	if set == nil {
		return
	}
	for _, e := range set.entities() {
		v, ok := set.get(e)
		if !ok || !w.IsAlive(e) {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 calls fn for every live entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 calls fn for every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ha.Kind(), hb.Kind(), hc.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		c, okC := Get(w, e, hc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}
