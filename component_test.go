package zecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsDenseIDs(t *testing.T) {
	w, err := NewWorld(WorldOptions{})
	require.NoError(t, err)

	idP := Register[testVec2](w)
	idTag := Register[tagComponent](w)

	require.Equal(t, ComponentID(0), idP)
	require.Equal(t, ComponentID(1), idTag)
}

func TestRegisterIsIdempotent(t *testing.T) {
	w, err := NewWorld(WorldOptions{})
	require.NoError(t, err)

	first := Register[testVec2](w)
	second := Register[testVec2](w)
	require.Equal(t, first, second)
}

func TestComponentIDForUnregisteredReturnsFalse(t *testing.T) {
	w, err := NewWorld(WorldOptions{})
	require.NoError(t, err)

	_, ok := ComponentIDFor[testVec2](w)
	require.False(t, ok)
}

func TestMustComponentIDForPanicsWhenUnregistered(t *testing.T) {
	w, err := NewWorld(WorldOptions{})
	require.NoError(t, err)

	require.Panics(t, func() { MustComponentIDFor[testVec2](w) })
}
