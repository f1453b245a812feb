package zecs

import "github.com/c2h5oh/datasize"

// WorldOptions configures a World at construction time. The zero value
// is a usable, small default configuration.
type WorldOptions struct {
	// Allocator backs every column and table growth. Defaults to
	// DefaultAllocator.
	Allocator Allocator

	// InitialColumnCapacity is a hint, in bytes, for how much storage a
	// freshly created table's columns should reserve for their first
	// component before the normal growth curve takes over. It expresses
	// the hint in byte-size terms (via datasize.ByteSize) rather than a
	// row count, since the natural unit for sizing a preallocation
	// budget is memory, not entity count, and the relationship between
	// the two varies per component type.
	InitialColumnCapacity datasize.ByteSize

	// DebugPoison enables overwriting a row's bytes with a sentinel
	// value after it is swap-removed, to make use-after-free of a stale
	// pointer or slice view visibly wrong instead of silently stale.
	// It costs a write per removed row per column and is meant for
	// development and tests, not hot production loops.
	DebugPoison bool
}

func (o WorldOptions) withDefaults() WorldOptions {
	if o.Allocator == nil {
		o.Allocator = DefaultAllocator
	}
	return o
}
