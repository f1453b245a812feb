package zecs

import "reflect"

// componentDescriptor records everything the storage layer needs to
// know about a registered component type without referring to it
// generically: its size and alignment for column allocation, and its
// reflect.Type for debug formatting.
type componentDescriptor struct {
	id        ComponentID
	typ       reflect.Type
	size      uintptr
	align     uintptr
	name      string
	isZeroLen bool
}

// componentRegistry assigns dense, stable ids to component types in
// registration order. A type is assigned an id only once; registering
// the same type twice is a no-op that returns the existing id, mirroring
// the idempotent registration the spec documents for repeated setup code
// (e.g. test fixtures that call Register in every subtest).
type componentRegistry struct {
	byType []reflect.Type
	lookup map[reflect.Type]ComponentID
	descs  []componentDescriptor
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		lookup: make(map[reflect.Type]ComponentID),
	}
}

func (r *componentRegistry) registerType(t reflect.Type) ComponentID {
	if id, ok := r.lookup[t]; ok {
		return id
	}
	id := ComponentID(len(r.byType))
	r.byType = append(r.byType, t)
	r.lookup[t] = id
	r.descs = append(r.descs, componentDescriptor{
		id:        id,
		typ:       t,
		size:      t.Size(),
		align:     uintptr(t.Align()),
		name:      t.String(),
		isZeroLen: t.Size() == 0,
	})
	return id
}

func (r *componentRegistry) idFor(t reflect.Type) (ComponentID, bool) {
	id, ok := r.lookup[t]
	return id, ok
}

func (r *componentRegistry) descriptor(id ComponentID) componentDescriptor {
	assertf(int(id) < len(r.descs), "zecs: unknown component id %d", id)
	return r.descs[id]
}

func (r *componentRegistry) mustIDFor(t reflect.Type) ComponentID {
	id, ok := r.idFor(t)
	assertf(ok, "zecs: component type %s is not registered", t)
	return id
}

// Register assigns T a component id in w, or returns its existing id if
// T was already registered. Registration must happen before any entity
// carrying T is spawned.
func Register[T any](w *World) ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	return w.registry.registerType(t)
}

// ComponentIDFor returns the id assigned to T, if it has been
// registered.
func ComponentIDFor[T any](w *World) (ComponentID, bool) {
	var zero T
	t := reflect.TypeOf(zero)
	return w.registry.idFor(t)
}

// MustComponentIDFor returns the id assigned to T, panicking if T was
// never registered.
func MustComponentIDFor[T any](w *World) ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	return w.registry.mustIDFor(t)
}
