package zecs

import (
	"unsafe"
)

// growthSlack matches the growth factor the storage layer uses
// throughout: next = next + next/2 + slack, which keeps small columns
// from re-growing on every single append while not overshooting large
// ones by much.
const growthSlack = 256

// column is a type-erased, alignment-aware byte buffer holding one
// component field's worth of data for every row of a table, packed
// contiguously (struct-of-arrays). For a zero-size component (a tag
// type) no storage is ever allocated; every operation on such a column
// is a length bookkeeping no-op.
type column struct {
	desc     componentDescriptor
	data     []byte
	len      int
	capacity int
	alloc    Allocator
}

func newColumn(desc componentDescriptor, alloc Allocator) *column {
	return &column{desc: desc, alloc: alloc}
}

// reserveBytes best-effort preallocates storage for roughly hintBytes
// worth of rows. A failure here is not reported: preallocation is an
// optimization hint, not a contract, and the normal growth path in
// EnsureCapacity still runs correctly from whatever capacity resulted.
func (c *column) reserveBytes(hintBytes int) {
	if c.desc.isZeroLen || hintBytes <= 0 {
		return
	}
	stride := c.alignedStride()
	if stride == 0 {
		return
	}
	rows := hintBytes / int(stride)
	if rows <= c.capacity {
		return
	}
	_ = c.EnsureCapacity(rows)
}

// alignedStride rounds the component size up to its own alignment, so
// that element i always starts at an aligned offset within data.
func (c *column) alignedStride() uintptr {
	size, align := c.desc.size, c.desc.align
	if align == 0 {
		return size
	}
	return (size + align - 1) &^ (align - 1)
}

func (c *column) Len() int { return c.len }

// EnsureCapacity grows the backing buffer, if needed, to hold at least
// n rows. On failure the column is left exactly as it was.
func (c *column) EnsureCapacity(n int) error {
	if c.desc.isZeroLen || n <= c.capacity {
		return nil
	}
	stride := c.alignedStride()
	newCap := n
	if c.capacity > 0 {
		newCap = c.capacity + c.capacity/2 + growthSlack
		if newCap < n {
			newCap = n
		}
	}
	buf, err := c.alloc.Alloc(int(uintptr(newCap) * stride))
	if err != nil {
		return err
	}
	copy(buf, c.data[:uintptr(c.len)*stride])
	c.data = buf
	c.capacity = newCap
	return nil
}

// AddOne grows the column by one row if necessary and returns the new
// row's slot, ready to be written via ItemPtr. On failure the column is
// left exactly as it was and the returned index is meaningless.
func (c *column) AddOne() (row int, err error) {
	if err := c.EnsureCapacity(c.len + 1); err != nil {
		return 0, err
	}
	row = c.len
	c.len++
	return row, nil
}

// zeroSentinel is the well-aligned, never-dereferenced address handed
// back by itemPtr for zero-size components, per spec: item_ptr may
// return any well-aligned dangling pointer for a zero-size element.
var zeroSentinel struct{}

// itemPtr returns an unsafe pointer to the start of row's storage. For
// a zero-size component it returns zeroSentinel's address rather than
// indexing into data, since such a component has no storage to index
// into; the pointer must never be dereferenced. It panics if row is out
// of bounds.
func (c *column) itemPtr(row int) unsafe.Pointer {
	assertf(row >= 0 && row < c.len, "zecs: column row %d out of bounds (len %d)", row, c.len)
	if c.desc.isZeroLen {
		return unsafe.Pointer(&zeroSentinel)
	}
	stride := c.alignedStride()
	return unsafe.Pointer(&c.data[uintptr(row)*stride])
}

// writeRaw copies src into row's storage. len(src) must equal the
// component's declared size.
func (c *column) writeRaw(row int, src []byte) {
	if c.desc.isZeroLen {
		return
	}
	assertf(uintptr(len(src)) == c.desc.size, "zecs: component %s write size mismatch", c.desc.name)
	dst := unsafe.Slice((*byte)(c.itemPtr(row)), len(src))
	copy(dst, src)
}

// readRaw returns a copy of row's storage as bytes.
func (c *column) readRaw(row int) []byte {
	if c.desc.isZeroLen {
		return nil
	}
	src := unsafe.Slice((*byte)(c.itemPtr(row)), c.desc.size)
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// copyRow copies row `srcRow` of src into row `dstRow` of c. Both
// columns must describe the same component type.
func (c *column) copyRow(dstRow int, src *column, srcRow int) {
	if c.desc.isZeroLen {
		return
	}
	srcPtr := unsafe.Slice((*byte)(src.itemPtr(srcRow)), src.desc.size)
	dstPtr := unsafe.Slice((*byte)(c.itemPtr(dstRow)), c.desc.size)
	copy(dstPtr, srcPtr)
}

// debugPoisonByte is written over a row's bytes after SwapRemove in
// debug builds, to turn use-after-free of a stale slice view into a
// visibly wrong value instead of silently stale data. It is controlled
// by the DebugPoison field of WorldOptions, not a build tag, since
// tests want to toggle it without a separate build.
const debugPoisonByte = 0xCD

// swapRemove removes row by moving the last row into its place
// (struct-of-arrays swap-remove) and shrinking len by one. It reports
// whether a row was moved (false when row was already the last row).
func (c *column) swapRemove(row int, poison bool) (moved bool) {
	last := c.len - 1
	if c.desc.isZeroLen {
		c.len--
		return row != last
	}
	stride := c.alignedStride()
	if row != last {
		dst := c.data[uintptr(row)*stride : uintptr(row)*stride+c.desc.size]
		src := c.data[uintptr(last)*stride : uintptr(last)*stride+c.desc.size]
		copy(dst, src)
		moved = true
	}
	if poison {
		tail := c.data[uintptr(last)*stride : uintptr(last)*stride+c.desc.size]
		for i := range tail {
			tail[i] = debugPoisonByte
		}
	}
	c.len--
	return moved
}
