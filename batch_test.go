package zecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnNEmptyCreatesDistinctEntities(t *testing.T) {
	w := newTestWorld(t)

	entities, err := w.SpawnNEmpty(5)
	require.NoError(t, err)
	require.Len(t, entities, 5)

	seen := map[Entity]bool{}
	for _, e := range entities {
		require.True(t, w.IsAlive(e))
		require.False(t, seen[e])
		seen[e] = true
	}
}

func TestSpawnWithN1InitializesEveryEntity(t *testing.T) {
	w := newTestWorld(t)
	Register[position](w)

	entities, err := SpawnWithN1(w, 10, position{X: 7})
	require.NoError(t, err)
	require.Len(t, entities, 10)

	for _, e := range entities {
		got := Get[position](w, e)
		require.Equal(t, position{X: 7}, *got)
	}

	q := NewQuery1[position](w)
	count := 0
	for q.Next() {
		count++
	}
	require.Equal(t, 10, count)
}

func TestSpawnWithN2InitializesBothComponents(t *testing.T) {
	w := newTestWorld(t)
	Register[position](w)
	Register[velocity](w)

	entities, err := SpawnWithN2(w, 3, position{X: 1}, velocity{X: 2})
	require.NoError(t, err)
	require.Len(t, entities, 3)

	for _, e := range entities {
		pos := Get[position](w, e)
		vel := Get[velocity](w, e)
		require.Equal(t, position{X: 1}, *pos)
		require.Equal(t, velocity{X: 2}, *vel)
	}
}

func TestSpawnNEmptyZeroIsNoOp(t *testing.T) {
	w := newTestWorld(t)
	entities, err := w.SpawnNEmpty(0)
	require.NoError(t, err)
	require.Nil(t, entities)
}
