package zecs

// SpawnNEmpty creates n entities with no components, in one call. It is
// equivalent to calling Spawn n times: rows are appended one at a time,
// each through the table's normal growth path, with no capacity
// reserved up front.
func (w *World) SpawnNEmpty(n int) ([]Entity, error) {
	return spawnNInto(w, NewIDSet(), n, nil)
}

// SpawnWithN1 creates n entities all carrying component T1 initialized
// to value, in one call.
func SpawnWithN1[T1 any](w *World, n int, value T1) ([]Entity, error) {
	id1 := MustComponentIDFor[T1](w)
	ids := newArchetypeSet(id1)
	return spawnNInto(w, ids, n, func(e Entity) {
		Put(w, e, value)
	})
}

// SpawnWithN2 creates n entities all carrying components T1 and T2
// initialized to v1 and v2, in one call.
func SpawnWithN2[T1, T2 any](w *World, n int, v1 T1, v2 T2) ([]Entity, error) {
	id1 := MustComponentIDFor[T1](w)
	id2 := MustComponentIDFor[T2](w)
	ids := newArchetypeSet(id1, id2)
	return spawnNInto(w, ids, n, func(e Entity) {
		Put(w, e, v1)
		Put(w, e, v2)
	})
}

// spawnNInto is the shared bulk-spawn path for SpawnNEmpty/SpawnWithN*:
// it ensures the destination archetype table exists once, then appends
// n rows to it rather than re-resolving the archetype on every entity.
// On an allocation failure partway through, the entities and directory
// slots already created are left in place (matching the single-entity
// Spawn contract: earlier successes are never unwound just because a
// later one failed) and the error is returned alongside however many
// entities were created.
func spawnNInto(w *World, ids *IDSet, n int, fill func(Entity)) ([]Entity, error) {
	if n <= 0 {
		return nil, nil
	}
	archIdx := w.archetypes.EnsureExistsTake(ids)
	tbl := w.archetypes.tableAt(archIdx)

	out := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		e := w.directory.Allocate(archIdx, 0)
		row, err := tbl.AddRow(e)
		if err != nil {
			w.directory.Free(e.Index)
			return out, err
		}
		w.directory.SetLocation(e.Index, archIdx, row)
		if fill != nil {
			fill(e)
		}
		out = append(out, e)
	}
	return out, nil
}
