package zecs

// archetypeEntry pairs a table with the id-set it was built for, so a
// hash collision between two different sets can be told apart from a
// true match by falling back to IDSet.Equal.
type archetypeEntry struct {
	ids   *IDSet
	table *table
}

// archetypeIndex maps an id-set to its table, preserving the order in
// which distinct archetypes were first created so iteration order (used
// by queries and by DebugString) is stable across runs for a given
// sequence of operations.
type archetypeIndex struct {
	buckets          map[uint64][]int
	entries          []archetypeEntry
	registry         *componentRegistry
	alloc            Allocator
	poison           bool
	initialBytesHint int
}

func newArchetypeIndex(registry *componentRegistry, alloc Allocator, poison bool, initialBytesHint int) *archetypeIndex {
	return &archetypeIndex{
		buckets:          make(map[uint64][]int),
		registry:         registry,
		alloc:            alloc,
		poison:           poison,
		initialBytesHint: initialBytesHint,
	}
}

func (a *archetypeIndex) find(ids *IDSet) (int, bool) {
	h := ids.Hash()
	for _, idx := range a.buckets[h] {
		if a.entries[idx].ids.Equal(ids) {
			return idx, true
		}
	}
	return 0, false
}

// EnsureExistsTake returns the index of the table for ids, creating one
// that takes ownership of ids (storing it directly, no clone) if none
// exists yet. The caller must not mutate ids after this call unless it
// already owns a fresh set built just for this call.
func (a *archetypeIndex) EnsureExistsTake(ids *IDSet) int {
	if idx, ok := a.find(ids); ok {
		return idx
	}
	return a.insert(ids)
}

// EnsureExistsClone returns the index of the table for ids, creating
// one backed by a clone of ids if none exists yet. Use this when the
// caller still needs ids for something else afterward.
func (a *archetypeIndex) EnsureExistsClone(ids *IDSet) int {
	if idx, ok := a.find(ids); ok {
		return idx
	}
	return a.insert(ids.Clone())
}

func (a *archetypeIndex) insert(ids *IDSet) int {
	idx := len(a.entries)
	a.entries = append(a.entries, archetypeEntry{
		ids:   ids,
		table: newTable(ids, a.registry, a.alloc, a.poison, a.initialBytesHint),
	})
	h := ids.Hash()
	a.buckets[h] = append(a.buckets[h], idx)
	return idx
}

func (a *archetypeIndex) tableAt(idx int) *table {
	return a.entries[idx].table
}

func (a *archetypeIndex) idsAt(idx int) *IDSet {
	return a.entries[idx].ids
}

func (a *archetypeIndex) count() int {
	return len(a.entries)
}
