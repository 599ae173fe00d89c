// Package membership holds the exact declared value set of one dimension.
//
// Sets are backed by roaring bitmaps, which keep dense declarations such as
// thousands of consecutive ids as small as sparse ones. A Set is immutable after
// construction and safe for concurrent Contains calls.
package membership

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/tuplekey/errs"
)

// Set is an immutable set of declared uint32 values.
type Set struct {
	bm *roaring.Bitmap
}

// New builds a set from declared values. Duplicates collapse.
func New(values []uint32) *Set {
	bm := roaring.BitmapOf(values...)
	bm.RunOptimize()

	return &Set{bm: bm}
}

// Contains reports whether v was declared.
func (s *Set) Contains(v uint32) bool {
	return s.bm.Contains(v)
}

// Cardinality returns the number of distinct declared values.
func (s *Set) Cardinality() uint64 {
	return s.bm.GetCardinality()
}

// Min returns the smallest declared value. The set must not be empty.
func (s *Set) Min() uint32 {
	return s.bm.Minimum()
}

// Max returns the largest declared value. The set must not be empty.
func (s *Set) Max() uint32 {
	return s.bm.Maximum()
}

// Bytes returns the portable roaring serialization of the set.
func (s *Set) Bytes() ([]byte, error) {
	return s.bm.ToBytes()
}

// Parse decodes a set produced by Bytes. Empty sets are rejected.
func Parse(data []byte) (*Set, error) {
	bm := roaring.New()
	if err := bm.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidMembershipPayload, err)
	}

	if bm.IsEmpty() {
		return nil, fmt.Errorf("%w: empty set", errs.ErrInvalidMembershipPayload)
	}

	return &Set{bm: bm}, nil
}
