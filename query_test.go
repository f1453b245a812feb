package zecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type health struct{ HP int }
type mana struct{ MP int }

func TestQuery3And4Get(t *testing.T) {
	w := newTestWorld(t)
	Register[position](w)
	Register[velocity](w)
	Register[health](w)
	Register[mana](w)

	e, err := SpawnWith4(w, position{X: 1}, velocity{X: 2}, health{HP: 10}, mana{MP: 5})
	require.NoError(t, err)

	q4 := NewQuery4[position, velocity, health, mana](w)
	require.True(t, q4.Next())
	require.Equal(t, e, q4.Entity())
	pos, vel, hp, mp := q4.Get()
	require.Equal(t, float32(1), pos.X)
	require.Equal(t, float32(2), vel.X)
	require.Equal(t, 10, hp.HP)
	require.Equal(t, 5, mp.MP)
	require.False(t, q4.Next())

	q3 := NewQuery3[position, velocity, health](w)
	require.True(t, q3.Next())
	require.False(t, q3.Next())
}

func TestQueryResetPicksUpNewArchetypes(t *testing.T) {
	w := newTestWorld(t)
	Register[position](w)
	Register[velocity](w)

	q := NewQuery1[position](w)
	require.False(t, q.Next())

	_, err := SpawnWith2(w, position{}, velocity{})
	require.NoError(t, err)

	require.False(t, q.Next())
	q.Reset()
	require.True(t, q.Next())
}

func TestQueryAfterDespawnSkipsRemoved(t *testing.T) {
	w := newTestWorld(t)
	Register[position](w)

	e1, _ := SpawnWith1(w, position{X: 1})
	e2, _ := SpawnWith1(w, position{X: 2})
	w.Despawn(e1)

	q := NewQuery1[position](w)
	seen := map[Entity]float32{}
	for q.Next() {
		seen[q.Entity()] = q.Get().X
	}
	require.Len(t, seen, 1)
	require.Equal(t, float32(2), seen[e2])
}
