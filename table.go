package zecs

// table is the struct-of-arrays storage for every entity sharing one
// archetype: one column per component id in the archetype, plus a
// parallel slice of the owning entity handle for each row so a
// swap-remove can report which entity moved.
type table struct {
	ids       *IDSet
	columns   map[ComponentID]*column
	order     []ComponentID // ascending, fixed at table creation
	entities  []Entity
	poison    bool
	allocator Allocator
}

func newTable(ids *IDSet, registry *componentRegistry, alloc Allocator, poison bool, initialBytesHint int) *table {
	order := ids.Ordered()
	cols := make(map[ComponentID]*column, len(order))
	for _, id := range order {
		c := newColumn(registry.descriptor(id), alloc)
		c.reserveBytes(initialBytesHint)
		cols[id] = c
	}
	return &table{
		ids:       ids,
		columns:   cols,
		order:     order,
		poison:    poison,
		allocator: alloc,
	}
}

func (t *table) Len() int { return len(t.entities) }

func (t *table) hasColumn(id ComponentID) bool {
	_, ok := t.columns[id]
	return ok
}

func (t *table) column(id ComponentID) *column {
	c, ok := t.columns[id]
	assertf(ok, "zecs: table does not have component id %d", id)
	return c
}

// AddRow appends a new row for entity e to every column and returns its
// row index. The new row's bytes are not cleared: a slot reused after a
// swap-remove still holds what was left there (the poison pattern when
// poisoning is on), so the caller writes every column of the row before
// reading it. On failure, any column that had already
// grown is rolled back so the table's columns stay length-consistent
// with each other and with t.entities.
func (t *table) AddRow(e Entity) (row int, err error) {
	grown := make([]*column, 0, len(t.order))
	for _, id := range t.order {
		c := t.columns[id]
		if _, aerr := c.AddOne(); aerr != nil {
			for _, g := range grown {
				g.swapRemove(g.Len()-1, false)
			}
			return 0, aerr
		}
		grown = append(grown, c)
	}
	t.entities = append(t.entities, e)
	return len(t.entities) - 1, nil
}

// SwapRemoveRow removes row by swapping the last row into its place in
// every column and in t.entities. It returns the entity that used to
// occupy the last row and whether a move actually happened (false when
// row was already last, in which case the caller need not fix up any
// other entity's directory entry).
func (t *table) SwapRemoveRow(row int) (moved Entity, didMove bool) {
	last := len(t.entities) - 1
	moved = t.entities[last]
	didMove = row != last
	for _, id := range t.order {
		t.columns[id].swapRemove(row, t.poison)
	}
	if didMove {
		t.entities[row] = t.entities[last]
	}
	t.entities = t.entities[:last]
	return moved, didMove
}

// CopyRowFrom copies, for every component id that both tables share,
// the data at src's srcRow into t's dstRow. Ids present in t but absent
// from src are left as AddRow produced them, uncleared (the newly added
// component, which the caller writes next);
// ids present in src but absent from t are simply dropped (the removed
// component).
func (t *table) CopyRowFrom(dstRow int, src *table, srcRow int) {
	for id, dstCol := range t.columns {
		if srcCol, ok := src.columns[id]; ok {
			dstCol.copyRow(dstRow, srcCol, srcRow)
		}
	}
}
