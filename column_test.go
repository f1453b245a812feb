package zecs

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type testVec2 struct {
	X, Y float32
}

func vec2Descriptor() componentDescriptor {
	var zero testVec2
	t := reflect.TypeOf(zero)
	return componentDescriptor{id: 0, typ: t, size: t.Size(), align: uintptr(t.Align()), name: t.String()}
}

func TestColumnAddOneAndWrite(t *testing.T) {
	c := newColumn(vec2Descriptor(), DefaultAllocator)
	row, err := c.AddOne()
	require.NoError(t, err)
	require.Equal(t, 0, row)

	v := testVec2{X: 1, Y: 2}
	c.writeRaw(row, unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))

	got := (*testVec2)(c.itemPtr(row))
	require.Equal(t, v, *got)
}

func TestColumnGrowthPreservesData(t *testing.T) {
	c := newColumn(vec2Descriptor(), DefaultAllocator)
	var rows []int
	for i := 0; i < 1000; i++ {
		row, err := c.AddOne()
		require.NoError(t, err)
		v := testVec2{X: float32(i), Y: float32(i) * 2}
		c.writeRaw(row, unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
		rows = append(rows, row)
	}
	for i, row := range rows {
		got := (*testVec2)(c.itemPtr(row))
		require.Equal(t, testVec2{X: float32(i), Y: float32(i) * 2}, *got)
	}
}

func TestColumnSwapRemove(t *testing.T) {
	c := newColumn(vec2Descriptor(), DefaultAllocator)
	for i := 0; i < 3; i++ {
		row, _ := c.AddOne()
		v := testVec2{X: float32(i)}
		c.writeRaw(row, unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
	}

	moved := c.swapRemove(0, false)
	require.True(t, moved)
	require.Equal(t, 2, c.Len())
	got := (*testVec2)(c.itemPtr(0))
	require.Equal(t, testVec2{X: 2}, *got)
}

func TestColumnSwapRemoveLastRowDoesNotMove(t *testing.T) {
	c := newColumn(vec2Descriptor(), DefaultAllocator)
	c.AddOne()
	c.AddOne()

	moved := c.swapRemove(1, false)
	require.False(t, moved)
	require.Equal(t, 1, c.Len())
}

type tagComponent struct{}

func TestColumnZeroSizeFastPath(t *testing.T) {
	var zero tagComponent
	rt := reflect.TypeOf(zero)
	desc := componentDescriptor{typ: rt, size: rt.Size(), align: uintptr(rt.Align()), isZeroLen: true}
	require.Equal(t, uintptr(0), desc.size)

	c := newColumn(desc, DefaultAllocator)
	row, err := c.AddOne()
	require.NoError(t, err)
	require.Equal(t, 0, row)
	require.Nil(t, c.readRaw(row))
	require.Equal(t, 1, c.Len())

	var ptr unsafe.Pointer
	require.NotPanics(t, func() { ptr = c.itemPtr(row) })
	require.NotNil(t, ptr)

	moved := c.swapRemove(0, false)
	require.False(t, moved)
	require.Equal(t, 0, c.Len())
}
