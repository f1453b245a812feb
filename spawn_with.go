package zecs

// newArchetypeSet builds the sorted id-set for a tuple of component
// types, panicking if the same id appears twice (a SpawnWithN call
// naming the same component type more than once). Reusing IDSet.Add's
// own duplicate assertion here means the duplicate-detection
// requirement falls out of the set construction for free, with no
// separate check to keep in sync.
func newArchetypeSet(ids ...ComponentID) *IDSet {
	s := NewIDSet()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// SpawnWith1 creates a new entity carrying a single component.
func SpawnWith1[T1 any](w *World, v1 T1) (Entity, error) {
	id1 := MustComponentIDFor[T1](w)
	ids := newArchetypeSet(id1)
	return spawnInto(w, ids, func(e Entity) {
		Put(w, e, v1)
	})
}

// SpawnWith2 creates a new entity carrying two components.
func SpawnWith2[T1, T2 any](w *World, v1 T1, v2 T2) (Entity, error) {
	id1 := MustComponentIDFor[T1](w)
	id2 := MustComponentIDFor[T2](w)
	ids := newArchetypeSet(id1, id2)
	return spawnInto(w, ids, func(e Entity) {
		Put(w, e, v1)
		Put(w, e, v2)
	})
}

// SpawnWith3 creates a new entity carrying three components.
func SpawnWith3[T1, T2, T3 any](w *World, v1 T1, v2 T2, v3 T3) (Entity, error) {
	id1 := MustComponentIDFor[T1](w)
	id2 := MustComponentIDFor[T2](w)
	id3 := MustComponentIDFor[T3](w)
	ids := newArchetypeSet(id1, id2, id3)
	return spawnInto(w, ids, func(e Entity) {
		Put(w, e, v1)
		Put(w, e, v2)
		Put(w, e, v3)
	})
}

// SpawnWith4 creates a new entity carrying four components.
func SpawnWith4[T1, T2, T3, T4 any](w *World, v1 T1, v2 T2, v3 T3, v4 T4) (Entity, error) {
	id1 := MustComponentIDFor[T1](w)
	id2 := MustComponentIDFor[T2](w)
	id3 := MustComponentIDFor[T3](w)
	id4 := MustComponentIDFor[T4](w)
	ids := newArchetypeSet(id1, id2, id3, id4)
	return spawnInto(w, ids, func(e Entity) {
		Put(w, e, v1)
		Put(w, e, v2)
		Put(w, e, v3)
		Put(w, e, v4)
	})
}

// spawnInto allocates a directory slot, adds a row to the table for
// ids (creating it if needed), and runs fill to write the initial
// component values. On allocation failure the directory slot is freed
// and no trace of e remains.
func spawnInto(w *World, ids *IDSet, fill func(Entity)) (Entity, error) {
	archIdx := w.archetypes.EnsureExistsTake(ids)
	tbl := w.archetypes.tableAt(archIdx)

	e := w.directory.Allocate(archIdx, 0)
	row, err := tbl.AddRow(e)
	if err != nil {
		w.directory.Free(e.Index)
		return Entity{}, err
	}
	w.directory.SetLocation(e.Index, archIdx, row)
	fill(e)
	return e, nil
}
