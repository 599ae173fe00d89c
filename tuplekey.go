// Package tuplekey encodes multi-dimensional integer keys into a single uint64 index.
//
// A key is a tuple of uint32 coordinates, one per dimension. Each dimension is declared
// with the values it may take; dimensions with a single value are fixed and cost nothing,
// the others form the digits of a mixed-radix number. The resulting index is dense
// enough to address an array, a cache slot or a composite sort key.
//
// # Basic Usage
//
//	import "github.com/arloliu/tuplekey"
//
//	enc, err := tuplekey.NewEncoder([][]uint32{
//	    {900},
//	    {0, 1, 9, 5},
//	    {900, 832},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	idx, err := enc.Encode([]uint32{900, 9, 900}) // 9*1 + 68*10 = 689
//	slots := make([]float64, enc.Size())
//	slots[idx] = 1.0
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoder package.
// Use the encoder package directly for inspection of dimension plans, batch encoding
// and layout snapshots.
package tuplekey

import (
	"github.com/arloliu/tuplekey/encoder"
	"github.com/arloliu/tuplekey/internal/options"
)

// NewEncoder builds an encoder that checks coordinates against the bounds of their
// declared values.
//
// Parameters:
//   - dimensions: Declared values per dimension, in tuple order
//   - opts: Optional configuration functions (see encoder.EncoderOption)
//
// Available options:
//   - encoder.WithStrictMembership()
//   - encoder.WithMaxSpace(limit)
//   - encoder.WithLittleEndian() / encoder.WithBigEndian()
//   - encoder.WithLogger(logger)
//
// Returns an error if a dimension is empty, the addressable space overflows uint64,
// or an option is invalid.
func NewEncoder(dimensions [][]uint32, opts ...encoder.EncoderOption) (*encoder.Encoder, error) {
	return encoder.New(dimensions, opts...)
}

// NewStrictEncoder builds an encoder that accepts only declared values.
//
// It is equivalent to NewEncoder with encoder.WithStrictMembership().
func NewStrictEncoder(dimensions [][]uint32, opts ...encoder.EncoderOption) (*encoder.Encoder, error) {
	return encoder.New(dimensions, options.Join(opts...), encoder.WithStrictMembership())
}

// MustNewEncoder is like NewEncoder but panics on error.
// It is meant for literal dimension tables known to be valid.
func MustNewEncoder(dimensions [][]uint32, opts ...encoder.EncoderOption) *encoder.Encoder {
	enc, err := encoder.New(dimensions, opts...)
	if err != nil {
		panic(err)
	}

	return enc
}

// ParseLayout rebuilds an encoder from a snapshot produced by (*encoder.Encoder).MarshalBinary.
func ParseLayout(data []byte, opts ...encoder.EncoderOption) (*encoder.Encoder, error) {
	return encoder.ParseLayout(data, opts...)
}
