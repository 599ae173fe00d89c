// Package errs defines the errors returned by tuplekey packages.
//
// Callers match failures with errors.Is against the sentinel values. Failures that
// identify a dimension are reported as typed errors (EmptyDimensionError,
// OutOfRangeError, NotDeclaredError) which also match their sentinel, so both
//
//	errors.Is(err, errs.ErrOutOfRange)
//
// and
//
//	var oor *errs.OutOfRangeError
//	errors.As(err, &oor)
//
// work on the same value.
package errs

import (
	"errors"
	"fmt"
)

// Build errors.
var (
	// ErrEmptyDimension indicates a declared dimension has no allowed values.
	ErrEmptyDimension = errors.New("dimension has no declared values")
	// ErrSpaceOverflow indicates the product of range sizes does not fit in 64 bits.
	ErrSpaceOverflow = errors.New("addressable space overflows uint64")
	// ErrSpaceLimitExceeded indicates the addressable space exceeds the configured limit.
	ErrSpaceLimitExceeded = errors.New("addressable space exceeds limit")
	// ErrInvalidSpaceLimit indicates a zero space limit was configured.
	ErrInvalidSpaceLimit = errors.New("space limit must be positive")
)

// Encode errors.
var (
	// ErrOutOfRange indicates a coordinate lies outside its dimension's [min, max] bounds.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrValueNotDeclared indicates a coordinate lies within bounds but is not a declared value.
	ErrValueNotDeclared = errors.New("coordinate not declared")
	// ErrCoordinateCount indicates the coordinate tuple is shorter than the encoder requires.
	ErrCoordinateCount = errors.New("not enough coordinates")
)

// Layout errors.
var (
	// ErrInvalidLayout indicates a layout snapshot whose content is inconsistent.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrInvalidHeaderSize indicates the layout header is truncated.
	ErrInvalidHeaderSize = errors.New("invalid layout header size")
	// ErrInvalidMagicNumber indicates the data is not a tuplekey layout.
	ErrInvalidMagicNumber = errors.New("invalid layout magic number")
	// ErrUnsupportedVersion indicates a layout version this package cannot read.
	ErrUnsupportedVersion = errors.New("unsupported layout version")
	// ErrInvalidPlanEntrySize indicates a truncated plan entry.
	ErrInvalidPlanEntrySize = errors.New("invalid plan entry size")
	// ErrInvalidMembershipPayload indicates a corrupt membership section.
	ErrInvalidMembershipPayload = errors.New("invalid membership payload")
)

// EmptyDimensionError reports the position of an empty declared dimension.
type EmptyDimensionError struct {
	Dimension int
}

func (e *EmptyDimensionError) Error() string {
	return fmt.Sprintf("%s: dimension %d", ErrEmptyDimension, e.Dimension)
}

// Is reports whether target is ErrEmptyDimension.
func (e *EmptyDimensionError) Is(target error) bool { return target == ErrEmptyDimension }

// OutOfRangeError reports a coordinate outside its dimension's bounds.
type OutOfRangeError struct {
	Dimension int
	Value     uint32
	Min       uint32
	Max       uint32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: dimension %d value %d not in [%d, %d]", ErrOutOfRange, e.Dimension, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// NotDeclaredError reports a coordinate that is not one of its dimension's declared values.
type NotDeclaredError struct {
	Dimension int
	Value     uint32
}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf("%s: dimension %d value %d", ErrValueNotDeclared, e.Dimension, e.Value)
}

// Is reports whether target is ErrValueNotDeclared.
func (e *NotDeclaredError) Is(target error) bool { return target == ErrValueNotDeclared }
