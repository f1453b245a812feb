package zecs

// World owns every entity, component registration, and archetype table.
// It is the sole entry point for mutating or querying ECS state; all of
// the package's generic helpers (Register, Add, Get, SpawnWith2, ...)
// take a *World as their first argument, since Go methods cannot carry
// their own type parameters.
type World struct {
	registry   *componentRegistry
	archetypes *archetypeIndex
	directory  *EntityDirectory
	emptyIdx   int
	options    WorldOptions
}

// NewWorld constructs an empty World. The empty archetype (no
// components) always exists, so a freshly spawned entity always has
// somewhere to live before any component is added.
func NewWorld(opts WorldOptions) (*World, error) {
	opts = opts.withDefaults()
	registry := newComponentRegistry()
	archetypes := newArchetypeIndex(registry, opts.Allocator, opts.DebugPoison, int(opts.InitialColumnCapacity))
	emptyIdx := archetypes.EnsureExistsTake(NewIDSet())
	return &World{
		registry:   registry,
		archetypes: archetypes,
		directory:  NewEntityDirectory(),
		emptyIdx:   emptyIdx,
		options:    opts,
	}, nil
}

// Spawn creates a new entity with no components, placed in the empty
// archetype.
func (w *World) Spawn() (Entity, error) {
	tbl := w.archetypes.tableAt(w.emptyIdx)
	// Reserve the directory slot first so Entity.Index is known before
	// the row is appended; if the row append fails we simply free the
	// slot back, leaving no trace.
	e := w.directory.Allocate(w.emptyIdx, 0)
	row, err := tbl.AddRow(e)
	if err != nil {
		w.directory.Free(e.Index)
		return Entity{}, err
	}
	w.directory.SetLocation(e.Index, w.emptyIdx, row)
	return e, nil
}

// Despawn removes e and recycles its directory slot. Despawning a
// stale or already-despawned handle is a silent no-op, matching the
// forgiving contract documented for repeated cleanup code.
func (w *World) Despawn(e Entity) {
	archIdx, row, ok := w.directory.Resolve(e)
	if !ok {
		return
	}
	tbl := w.archetypes.tableAt(archIdx)
	moved, didMove := tbl.SwapRemoveRow(row)
	if didMove {
		w.directory.SetLocation(moved.Index, archIdx, row)
	}
	w.directory.Free(e.Index)
}

// IsAlive reports whether e refers to a currently spawned entity.
func (w *World) IsAlive(e Entity) bool {
	return w.directory.IsAlive(e)
}

// Options returns the configuration w was constructed with.
func (w *World) Options() WorldOptions {
	return w.options
}

// Stats returns a snapshot of the world's current size.
func (w *World) Stats() WorldStats {
	s := WorldStats{
		ArchetypeCount: w.archetypes.count(),
	}
	for i := 0; i < w.archetypes.count(); i++ {
		t := w.archetypes.tableAt(i)
		n := t.Len()
		s.EntityCount += n
		s.TableRows = append(s.TableRows, TableStat{
			ComponentIDs: w.archetypes.idsAt(i).Ordered(),
			Rows:         n,
		})
	}
	return s
}

// migrate moves the row currently at (srcArchIdx, srcRow) into the
// table for dstIDs, creating that table if it does not already exist,
// and returns the entity's new row index in that table. It performs the
// four-step sequence the storage layer documents as load-bearing:
//  1. copy shared component data into the destination row
//  2. swap-remove the row out of the source table
//  3. if the swap-remove moved another entity, fix its directory entry
//  4. point the migrating entity's directory entry at its new home
//
// Step 2 must run after step 1 (copying out of a row that has already
// been swap-removed would read garbage or another entity's data), and
// steps 3 and 4 must both run after step 2 (the source table's state
// after the removal determines whether a third entity moved at all).
func (w *World) migrate(e Entity, srcArchIdx, srcRow int, dstIDs *IDSet) (int, error) {
	dstArchIdx := w.archetypes.EnsureExistsClone(dstIDs)
	srcTable := w.archetypes.tableAt(srcArchIdx)
	dstTable := w.archetypes.tableAt(dstArchIdx)

	dstRow, err := dstTable.AddRow(e)
	if err != nil {
		return 0, err
	}

	dstTable.CopyRowFrom(dstRow, srcTable, srcRow)

	moved, didMove := srcTable.SwapRemoveRow(srcRow)
	if didMove {
		w.directory.SetLocation(moved.Index, srcArchIdx, srcRow)
	}

	w.directory.SetLocation(e.Index, dstArchIdx, dstRow)
	return dstRow, nil
}
