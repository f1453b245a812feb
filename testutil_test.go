package zecs

import (
	"reflect"
	"unsafe"
)

func typeOf(v any) reflect.Type {
	return reflect.TypeOf(v)
}

func bytesOf[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), size)
}
