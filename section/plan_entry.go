package section

import (
	"github.com/arloliu/tuplekey/endian"
	"github.com/arloliu/tuplekey/errs"
)

// PlanEntry records one ranged dimension in the layout snapshot. It is a fixed size of 20 bytes.
type PlanEntry struct {
	// Dimension is the position of the dimension in the coordinate tuple.
	//
	// Offset: 0, Size: 4 bytes
	Dimension uint32
	// Min is the smallest declared value.
	//
	// Offset: 4, Size: 4 bytes
	Min uint32
	// Max is the largest declared value.
	//
	// Offset: 8, Size: 4 bytes
	Max uint32
	// Stride is the multiplier applied to the dimension's offset.
	//
	// Offset: 12, Size: 8 bytes
	Stride uint64
}

// Append appends the encoded entry to buf.
func (e PlanEntry) Append(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint32(buf, e.Dimension)
	buf = engine.AppendUint32(buf, e.Min)
	buf = engine.AppendUint32(buf, e.Max)

	return engine.AppendUint64(buf, e.Stride)
}

// ParsePlanEntry parses a PlanEntry from the first PlanEntrySize bytes of data.
func ParsePlanEntry(data []byte, engine endian.EndianEngine) (PlanEntry, error) {
	if len(data) < PlanEntrySize {
		return PlanEntry{}, errs.ErrInvalidPlanEntrySize
	}

	return PlanEntry{
		Dimension: engine.Uint32(data[0:4]),
		Min:       engine.Uint32(data[4:8]),
		Max:       engine.Uint32(data[8:12]),
		Stride:    engine.Uint64(data[12:20]),
	}, nil
}
