package zecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestStatsTableRowsMatchExpectedShape(t *testing.T) {
	w := newTestWorld(t)
	Register[position](w)
	Register[velocity](w)

	SpawnWith1(w, position{X: 1})
	SpawnWith1(w, position{X: 2})
	SpawnWith2(w, position{X: 3}, velocity{X: 4})

	stats := w.Stats()

	idP := MustComponentIDFor[position](w)
	idV := MustComponentIDFor[velocity](w)
	want := []TableStat{
		{ComponentIDs: []ComponentID{}, Rows: 0},
		{ComponentIDs: []ComponentID{idP}, Rows: 2},
		{ComponentIDs: []ComponentID{idP, idV}, Rows: 1},
	}

	diff := cmp.Diff(want, stats.TableRows,
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b TableStat) bool {
			return len(a.ComponentIDs) < len(b.ComponentIDs)
		}),
	)
	require.Empty(t, diff, "unexpected table row shape:\n%s", diff)
}
