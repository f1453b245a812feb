package zecs

import (
	"hash/fnv"

	"github.com/RoaringBitmap/roaring/v2"
)

// ComponentID identifies a registered component type. Ids are assigned
// densely starting at 0 in registration order and never recycled.
type ComponentID uint32

// IDSet is a sorted, deduplicated set of component ids: an archetype's
// identity. It is backed by a compressed bitmap rather than a plain
// slice, since the original design treats the set representation as an
// interchangeable collaborator and a bitmap gives Contains, Add, and
// Remove without a binary search over a growing slice.
type IDSet struct {
	bits *roaring.Bitmap
}

// NewIDSet returns an empty set.
func NewIDSet() *IDSet {
	return &IDSet{bits: roaring.New()}
}

// NewIDSetOf returns a set containing exactly ids, deduplicated.
func NewIDSetOf(ids ...ComponentID) *IDSet {
	s := NewIDSet()
	for _, id := range ids {
		s.bits.Add(uint32(id))
	}
	return s
}

// Clone returns an independent copy of s.
func (s *IDSet) Clone() *IDSet {
	return &IDSet{bits: s.bits.Clone()}
}

// Add inserts id into s. It panics if id is already present: callers
// that mean to tolerate duplicates should check Contains first.
func (s *IDSet) Add(id ComponentID) {
	added := s.bits.CheckedAdd(uint32(id))
	assertf(added, "zecs: component id %d already present in set", id)
}

// Remove deletes id from s. It panics if id is absent.
func (s *IDSet) Remove(id ComponentID) {
	removed := s.bits.CheckedRemove(uint32(id))
	assertf(removed, "zecs: component id %d not present in set", id)
}

// Contains reports whether id is a member of s.
func (s *IDSet) Contains(id ComponentID) bool {
	return s.bits.Contains(uint32(id))
}

// ContainsAll reports whether every id in other is also in s, i.e.
// whether s's archetype is a superset of other's requested tuple.
func (s *IDSet) ContainsAll(other *IDSet) bool {
	return s.bits.AndCardinality(other.bits) == other.bits.GetCardinality()
}

// Len returns the number of ids in s.
func (s *IDSet) Len() int {
	return int(s.bits.GetCardinality())
}

// Ordered returns the set's members in ascending order. The returned
// slice is owned by the caller.
func (s *IDSet) Ordered() []ComponentID {
	raw := s.bits.ToArray()
	out := make([]ComponentID, len(raw))
	for i, v := range raw {
		out[i] = ComponentID(v)
	}
	return out
}

// Equal reports whether s and other contain exactly the same ids. It
// compares sorted member slices rather than delegating to the bitmap
// library's own equality, since two bitmaps with different internal
// container layouts must still compare equal if their logical contents
// match.
func (s *IDSet) Equal(other *IDSet) bool {
	if s.bits.GetCardinality() != other.bits.GetCardinality() {
		return false
	}
	a, b := s.bits.ToArray(), other.bits.ToArray()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash returns a stable hash of s's contents, suitable for bucketing
// archetypes by id-set identity before falling back to Equal on a
// collision.
func (s *IDSet) Hash() uint64 {
	h := fnv.New64a()
	for _, v := range s.bits.ToArray() {
		var buf [4]byte
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		h.Write(buf[:])
	}
	return h.Sum64()
}
