package zecs

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var debugConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DebugString renders a human-readable dump of every archetype table in
// w, its component ids, and its row count. It is meant for tests and
// interactive debugging, not for production logging.
func (w *World) DebugString() string {
	var b strings.Builder
	stats := w.Stats()
	fmt.Fprintf(&b, "World{entities=%d archetypes=%d}\n", stats.EntityCount, stats.ArchetypeCount)
	for i := 0; i < w.archetypes.count(); i++ {
		ids := w.archetypes.idsAt(i)
		t := w.archetypes.tableAt(i)
		fmt.Fprintf(&b, "  archetype %d: ids=%v rows=%d\n", i, ids.Ordered(), t.Len())
	}
	return b.String()
}

// DebugDump returns a deep, recursive dump of value (sorted map keys,
// no pointer addresses or capacities). It is a thin wrapper over
// go-spew intended for ad hoc inspection of component values in tests.
func DebugDump(value any) string {
	return debugConfig.Sdump(value)
}
