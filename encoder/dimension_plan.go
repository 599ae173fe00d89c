package encoder

import (
	"fmt"
	"slices"

	"github.com/arloliu/tuplekey/errs"
)

// DimensionKind tells whether a dimension contributes a term to the encoded index.
type DimensionKind uint8

const (
	// KindFixed is a dimension declared with exactly one value. It contributes nothing.
	KindFixed DimensionKind = iota + 1
	// KindRanged is a dimension declared with two or more values.
	// It contributes Stride * (value - Min).
	KindRanged
)

func (k DimensionKind) String() string {
	switch k {
	case KindFixed:
		return "Fixed"
	case KindRanged:
		return "Ranged"
	default:
		return "Unknown"
	}
}

// ClassifyDimension classifies the declared values of the given dimension.
//
// Returns an *errs.EmptyDimensionError when values is empty.
func ClassifyDimension(dimension int, values []uint32) (DimensionKind, error) {
	switch len(values) {
	case 0:
		return 0, &errs.EmptyDimensionError{Dimension: dimension}
	case 1:
		return KindFixed, nil
	default:
		return KindRanged, nil
	}
}

// DimensionPlan describes how one ranged dimension contributes to the encoded index.
//
// Only the bounds of the declared values are kept, so a declaration like {0, 1, 9, 5}
// covers the contiguous range [0, 9]. Max >= Min holds by construction, which makes
// RangeSize at least 1.
type DimensionPlan struct {
	// Dimension is the position of the dimension in the coordinate tuple.
	Dimension int
	// Min is the smallest declared value.
	Min uint32
	// Max is the largest declared value.
	Max uint32
	// Stride is the product of the range sizes of every ranged dimension before this one.
	Stride uint64
}

// NewDimensionPlan creates the plan of a ranged dimension from its declared values.
//
// Parameters:
//   - dimension: Position of the dimension in the coordinate tuple
//   - values: Declared values, at least one
//   - stride: Multiplier for the dimension's offset (the running carry)
//
// Returns:
//   - DimensionPlan: Plan with Min/Max taken from values
//   - error: *errs.EmptyDimensionError if values is empty
func NewDimensionPlan(dimension int, values []uint32, stride uint64) (DimensionPlan, error) {
	if len(values) == 0 {
		return DimensionPlan{}, &errs.EmptyDimensionError{Dimension: dimension}
	}

	return DimensionPlan{
		Dimension: dimension,
		Min:       slices.Min(values),
		Max:       slices.Max(values),
		Stride:    stride,
	}, nil
}

// RangeSize returns Max - Min + 1, the number of distinct offsets of the dimension.
func (p DimensionPlan) RangeSize() uint64 {
	return uint64(p.Max) - uint64(p.Min) + 1
}

// Contains reports whether v lies within [Min, Max].
func (p DimensionPlan) Contains(v uint32) bool {
	return v-p.Min <= p.Max-p.Min
}

// Contribution returns Stride * (v - Min) without checking bounds.
// The result is meaningless when Contains(v) is false.
func (p DimensionPlan) Contribution(v uint32) uint64 {
	return p.Stride * uint64(v-p.Min)
}

func (p DimensionPlan) String() string {
	return fmt.Sprintf("{pos:%d, min:%d, max:%d, step:%d, carry:%d}", p.Dimension, p.Min, p.Max, p.RangeSize(), p.Stride)
}
