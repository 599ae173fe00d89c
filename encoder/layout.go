package encoder

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/tuplekey/endian"
	"github.com/arloliu/tuplekey/errs"
	"github.com/arloliu/tuplekey/format"
	"github.com/arloliu/tuplekey/internal/hash"
	"github.com/arloliu/tuplekey/internal/membership"
	"github.com/arloliu/tuplekey/internal/options"
	"github.com/arloliu/tuplekey/section"
)

// MarshalBinary returns the layout snapshot of the encoder.
// See package section for the binary structure.
func (e *Encoder) MarshalBinary() ([]byte, error) {
	return e.AppendBinary(nil)
}

// AppendBinary appends the layout snapshot of the encoder to buf.
func (e *Encoder) AppendBinary(buf []byte) ([]byte, error) {
	header := section.NewLayoutHeader(len(e.fixed), len(e.plans))
	if e.bigEndian {
		header.Flag.WithBigEndian()
	}
	if e.exact {
		header.Flag.SetMembershipMode(format.MembershipExact)
		header.MembershipOffset = uint32(header.BodySize()) //nolint: gosec
	}

	return e.appendLayout(buf, header)
}

// Fingerprint returns the xxHash64 of the canonical layout: little-endian, without
// membership sets. Encoders with equal fingerprints return the same index for every
// tuple both accept.
func (e *Encoder) Fingerprint() uint64 {
	// a bounds-only layout never fails to serialize
	buf, _ := e.appendLayout(nil, section.NewLayoutHeader(len(e.fixed), len(e.plans)))

	return hash.Fingerprint(buf)
}

func (e *Encoder) appendLayout(buf []byte, header section.LayoutHeader) ([]byte, error) {
	engine := header.Flag.GetEndianEngine()

	buf = slices.Grow(buf, header.BodySize())
	buf = append(buf, header.Bytes()...)
	for _, v := range e.fixed {
		buf = engine.AppendUint32(buf, v)
	}
	for _, p := range e.plans {
		buf = planEntry(p).Append(buf, engine)
	}

	if header.Flag.MembershipMode() != format.MembershipExact {
		return buf, nil
	}

	for i, set := range e.members {
		data, err := set.Bytes()
		if err != nil {
			return nil, fmt.Errorf("dimension %d membership: %w", e.plans[i].Dimension, err)
		}
		buf = engine.AppendUint32(buf, uint32(len(data))) //nolint: gosec
		buf = append(buf, data...)
	}

	return buf, nil
}

func planEntry(p DimensionPlan) section.PlanEntry {
	return section.PlanEntry{
		Dimension: uint32(p.Dimension), //nolint: gosec
		Min:       p.Min,
		Max:       p.Max,
		Stride:    p.Stride,
	}
}

// ParseLayout rebuilds an encoder from a layout snapshot produced by MarshalBinary.
//
// The byte order and membership mode are taken from the snapshot. WithStrictMembership
// fails with errs.ErrInvalidLayout when the snapshot has no membership sets, and
// WithMaxSpace is enforced as in New. Every stride is recomputed and checked.
//
// Parameters:
//   - data: Layout snapshot bytes; the slice is not retained
//   - opts: Optional configuration functions
//
// Returns:
//   - *Encoder: Encoder with the same index mapping as the one that wrote data
//   - error: errs.ErrInvalidLayout or a section/membership error on corrupt input
func ParseLayout(data []byte, opts ...EncoderOption) (*Encoder, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseLayoutHeader(data)
	if err != nil {
		return nil, err
	}

	bodySize := header.BodySize()
	if len(data) < bodySize {
		return nil, fmt.Errorf("%w: %d bytes, need %d", errs.ErrInvalidLayout, len(data), bodySize)
	}

	mode := header.Flag.MembershipMode()
	if cfg.mode == format.MembershipExact && mode != format.MembershipExact {
		return nil, fmt.Errorf("%w: layout carries no membership sets", errs.ErrInvalidLayout)
	}
	cfg.mode = mode
	cfg.bigEndian = header.Flag.IsBigEndian()
	engine := header.Flag.GetEndianEngine()

	offset := section.HeaderSize
	fixed := make([]uint32, header.DimensionCount)
	for i := range fixed {
		fixed[i] = engine.Uint32(data[offset:])
		offset += section.FixedValueSize
	}

	plans, size, err := parsePlans(data[offset:bodySize], fixed, int(header.PlanCount), engine)
	if err != nil {
		return nil, err
	}
	offset = bodySize

	var members []*membership.Set
	if mode == format.MembershipExact {
		members, offset, err = parseMembers(data, offset, plans, engine)
		if err != nil {
			return nil, err
		}
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidLayout, len(data)-offset)
	}

	e, err := newEncoder(cfg, fixed, plans, members, size)
	if err != nil {
		return nil, err
	}

	if ce := cfg.logger.Check(zap.DebugLevel, "layout parsed"); ce != nil {
		ce.Write(
			zap.Int("dimensions", len(fixed)),
			zap.Int("ranged", len(plans)),
			zap.Uint64("space", size),
			zap.Stringer("membership", mode),
			zap.Bool("big_endian", cfg.bigEndian),
		)
	}

	return e, nil
}

// parsePlans decodes count plan entries and checks ordering, bounds and strides.
// It returns the plans and the product of their range sizes.
func parsePlans(data []byte, fixed []uint32, count int, engine endian.EndianEngine) ([]DimensionPlan, uint64, error) {
	plans := make([]DimensionPlan, 0, count)
	carry := uint64(1)
	prev := -1

	for i := range count {
		entry, err := section.ParsePlanEntry(data[i*section.PlanEntrySize:], engine)
		if err != nil {
			return nil, 0, err
		}

		d := int(entry.Dimension)
		switch {
		case d <= prev || d >= len(fixed):
			return nil, 0, fmt.Errorf("%w: plan %d has dimension %d after %d of %d",
				errs.ErrInvalidLayout, i, d, prev, len(fixed))
		case entry.Min > entry.Max:
			return nil, 0, fmt.Errorf("%w: dimension %d min %d above max %d",
				errs.ErrInvalidLayout, d, entry.Min, entry.Max)
		case entry.Stride != carry:
			return nil, 0, fmt.Errorf("%w: dimension %d stride %d, expected %d",
				errs.ErrInvalidLayout, d, entry.Stride, carry)
		case fixed[d] != 0:
			return nil, 0, fmt.Errorf("%w: ranged dimension %d has fixed value %d",
				errs.ErrInvalidLayout, d, fixed[d])
		}

		plan := DimensionPlan{Dimension: d, Min: entry.Min, Max: entry.Max, Stride: entry.Stride}
		carry, err = growSpace(carry, plan)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", errs.ErrInvalidLayout, err)
		}

		plans = append(plans, plan)
		prev = d
	}

	return plans, carry, nil
}

// parseMembers decodes one length-prefixed membership set per plan starting at offset
// and returns the sets and the offset after the last one.
func parseMembers(data []byte, offset int, plans []DimensionPlan, engine endian.EndianEngine) ([]*membership.Set, int, error) {
	members := make([]*membership.Set, 0, len(plans))

	for _, p := range plans {
		if len(data)-offset < section.MembershipLengthSize {
			return nil, 0, fmt.Errorf("%w: dimension %d length truncated", errs.ErrInvalidMembershipPayload, p.Dimension)
		}
		n := int(engine.Uint32(data[offset:]))
		offset += section.MembershipLengthSize

		if n > len(data)-offset {
			return nil, 0, fmt.Errorf("%w: dimension %d needs %d bytes, have %d",
				errs.ErrInvalidMembershipPayload, p.Dimension, n, len(data)-offset)
		}

		set, err := membership.Parse(data[offset : offset+n])
		if err != nil {
			return nil, 0, fmt.Errorf("dimension %d: %w", p.Dimension, err)
		}
		if set.Min() != p.Min || set.Max() != p.Max {
			return nil, 0, fmt.Errorf("%w: dimension %d set spans [%d, %d], plan [%d, %d]",
				errs.ErrInvalidMembershipPayload, p.Dimension, set.Min(), set.Max(), p.Min, p.Max)
		}

		members = append(members, set)
		offset += n
	}

	return members, offset, nil
}
