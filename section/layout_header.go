package section

import (
	"fmt"

	"github.com/arloliu/tuplekey/errs"
	"github.com/arloliu/tuplekey/format"
)

// LayoutHeader is the fixed-size header of a layout snapshot.
type LayoutHeader struct {
	// Flag is the packed option field and version. byte offset 0-2, byte 3 reserved.
	Flag LayoutFlag
	// DimensionCount is the number of dimensions, fixed and ranged. byte offset 4-7
	DimensionCount uint32
	// PlanCount is the number of ranged dimensions. byte offset 8-11
	PlanCount uint32
	// MembershipOffset is the byte offset of the membership section, 0 when absent. byte offset 12-15
	MembershipOffset uint32
}

// NewLayoutHeader creates a header for the given dimension and plan counts.
// MembershipOffset is left zero and set by the writer when membership sets follow.
func NewLayoutHeader(dimensionCount, planCount int) LayoutHeader {
	return LayoutHeader{
		Flag:           NewLayoutFlag(),
		DimensionCount: uint32(dimensionCount), //nolint: gosec
		PlanCount:      uint32(planCount),      //nolint: gosec
	}
}

// BodySize returns the size of header, fixed value slots and plan entries.
func (h LayoutHeader) BodySize() int {
	return HeaderSize + int(h.DimensionCount)*FixedValueSize + int(h.PlanCount)*PlanEntrySize
}

// Bytes serializes the header. The Options field is always little-endian so the
// byte order of the remaining fields can be read from it.
func (h LayoutHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Version
	engine.PutUint32(b[4:8], h.DimensionCount)
	engine.PutUint32(b[8:12], h.PlanCount)
	engine.PutUint32(b[12:16], h.MembershipOffset)

	return b
}

// Parse parses the header from data, which must be exactly HeaderSize bytes.
func (h *LayoutHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Version = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if data[3] != 0 {
		return fmt.Errorf("%w: reserved header byte is %d", errs.ErrInvalidLayout, data[3])
	}

	engine := h.Flag.GetEndianEngine()
	h.DimensionCount = engine.Uint32(data[4:8])
	h.PlanCount = engine.Uint32(data[8:12])
	h.MembershipOffset = engine.Uint32(data[12:16])

	return h.validateCounts()
}

func (h LayoutHeader) validateCounts() error {
	if h.DimensionCount > MaxDimensionCount {
		return fmt.Errorf("%w: dimension count %d exceeds %d", errs.ErrInvalidLayout, h.DimensionCount, MaxDimensionCount)
	}

	if h.PlanCount > h.DimensionCount {
		return fmt.Errorf("%w: plan count %d exceeds dimension count %d", errs.ErrInvalidLayout, h.PlanCount, h.DimensionCount)
	}

	hasMembership := h.Flag.MembershipMode() == format.MembershipExact
	switch {
	case hasMembership && h.MembershipOffset != uint32(h.BodySize()): //nolint: gosec
		return fmt.Errorf("%w: membership offset %d, expected %d", errs.ErrInvalidLayout, h.MembershipOffset, h.BodySize())
	case !hasMembership && h.MembershipOffset != 0:
		return fmt.Errorf("%w: membership offset %d without membership flag", errs.ErrInvalidLayout, h.MembershipOffset)
	}

	return nil
}

// ParseLayoutHeader parses a LayoutHeader from the start of data.
func ParseLayoutHeader(data []byte) (LayoutHeader, error) {
	if len(data) < HeaderSize {
		return LayoutHeader{}, errs.ErrInvalidHeaderSize
	}

	h := LayoutHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return LayoutHeader{}, err
	}

	return h, nil
}
