package zecs

import (
	"unsafe"
)

// Has reports whether e currently carries component id.
func (w *World) Has(e Entity, id ComponentID) bool {
	archIdx, _ := w.directory.MustResolve(e)
	return w.archetypes.idsAt(archIdx).Contains(id)
}

// AddRaw attaches component id to e, initialized from value (which must
// be exactly the component's registered size), migrating e into the
// archetype that adds id to its current set. It panics if e already
// carries id.
func (w *World) AddRaw(e Entity, id ComponentID, value []byte) error {
	archIdx, row := w.directory.MustResolve(e)
	cur := w.archetypes.idsAt(archIdx)
	assertf(!cur.Contains(id), "zecs: entity already has component id %d", id)

	next := cur.Clone()
	next.Add(id)
	dstRow, err := w.migrate(e, archIdx, row, next)
	if err != nil {
		return err
	}
	dstArchIdx, _, _ := w.directory.Resolve(e)
	w.archetypes.tableAt(dstArchIdx).column(id).writeRaw(dstRow, value)
	return nil
}

// PutRaw writes value into e's component id, adding it first (via
// AddRaw's migration) if e does not already carry it.
func (w *World) PutRaw(e Entity, id ComponentID, value []byte) error {
	archIdx, row := w.directory.MustResolve(e)
	if w.archetypes.idsAt(archIdx).Contains(id) {
		w.archetypes.tableAt(archIdx).column(id).writeRaw(row, value)
		return nil
	}
	return w.AddRaw(e, id, value)
}

// SetRaw writes value into e's existing component id in place, without
// any archetype migration. It panics if e does not carry id.
func (w *World) SetRaw(e Entity, id ComponentID, value []byte) {
	archIdx, row := w.directory.MustResolve(e)
	assertf(w.archetypes.idsAt(archIdx).Contains(id), "zecs: entity does not have component id %d", id)
	w.archetypes.tableAt(archIdx).column(id).writeRaw(row, value)
}

// DelRaw removes component id from e, migrating it into the archetype
// without id. It panics if e does not carry id.
func (w *World) DelRaw(e Entity, id ComponentID) error {
	archIdx, row := w.directory.MustResolve(e)
	cur := w.archetypes.idsAt(archIdx)
	assertf(cur.Contains(id), "zecs: entity does not have component id %d", id)

	next := cur.Clone()
	next.Remove(id)
	_, err := w.migrate(e, archIdx, row, next)
	return err
}

// GetRaw returns a copy of e's component id data. It panics if e does
// not carry id.
func (w *World) GetRaw(e Entity, id ComponentID) []byte {
	archIdx, row := w.directory.MustResolve(e)
	assertf(w.archetypes.idsAt(archIdx).Contains(id), "zecs: entity does not have component id %d", id)
	return w.archetypes.tableAt(archIdx).column(id).readRaw(row)
}

func valueBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), size)
}

// Add attaches component T to e, initialized to value, migrating e into
// the archetype that adds T. It panics if T is unregistered or e
// already carries T.
func Add[T any](w *World, e Entity, value T) error {
	id := MustComponentIDFor[T](w)
	return w.AddRaw(e, id, valueBytes(&value))
}

// Put writes value into e's component T, adding it first if e does not
// already carry it. It panics if T is unregistered.
func Put[T any](w *World, e Entity, value T) error {
	id := MustComponentIDFor[T](w)
	return w.PutRaw(e, id, valueBytes(&value))
}

// Set overwrites e's existing component T in place. It panics if T is
// unregistered or e does not carry T.
func Set[T any](w *World, e Entity, value T) {
	id := MustComponentIDFor[T](w)
	w.SetRaw(e, id, valueBytes(&value))
}

// Del removes component T from e. It panics if T is unregistered or e
// does not carry T.
func Del[T any](w *World, e Entity) error {
	id := MustComponentIDFor[T](w)
	return w.DelRaw(e, id)
}

// Get returns a pointer directly into e's component T storage. The
// pointer is valid only until the next structural mutation (spawn,
// despawn, add, or del) on w. It panics if T is unregistered or e does
// not carry T.
func Get[T any](w *World, e Entity) *T {
	id := MustComponentIDFor[T](w)
	archIdx, row := w.directory.MustResolve(e)
	assertf(w.archetypes.idsAt(archIdx).Contains(id), "zecs: entity does not have component %T", *new(T))
	ptr := w.archetypes.tableAt(archIdx).column(id).itemPtr(row)
	return (*T)(ptr)
}

// Has reports whether e carries component T. It returns false if T is
// unregistered.
func Has[T any](w *World, e Entity) bool {
	id, ok := ComponentIDFor[T](w)
	if !ok {
		return false
	}
	return w.Has(e, id)
}
