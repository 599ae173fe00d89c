package encoder

import (
	"fmt"
	"slices"
)

// EncodeBatch appends the index of every tuple to dst and returns the extended slice.
//
// Encoding stops at the first failing tuple; the returned slice then holds the
// indexes of the tuples before it and the error names the failing position.
func (e *Encoder) EncodeBatch(dst []uint64, tuples [][]uint32) ([]uint64, error) {
	dst = slices.Grow(dst, len(tuples))
	for i, coords := range tuples {
		index, err := e.Encode(coords)
		if err != nil {
			return dst, fmt.Errorf("tuple %d: %w", i, err)
		}
		dst = append(dst, index)
	}

	return dst, nil
}
