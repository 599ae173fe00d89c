package encoder

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/tuplekey/errs"
	"github.com/arloliu/tuplekey/format"
	"github.com/arloliu/tuplekey/internal/membership"
	"github.com/arloliu/tuplekey/internal/options"
)

// Encoder maps coordinate tuples onto a single uint64 index.
//
// Ranged dimensions are combined positionally: the first ranged dimension has stride 1
// and every following one has the product of the range sizes before it as stride.
// Fixed dimensions contribute nothing.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	fixed     []uint32
	plans     []DimensionPlan
	planIndex []int             // per dimension: index into plans, -1 for fixed dimensions
	members   []*membership.Set // exact mode only, parallel to plans
	exact     bool
	size      uint64
	minCoords int
	bigEndian bool
}

// New builds an Encoder from the declared values of every dimension, in tuple order.
//
// Parameters:
//   - dimensions: Declared values per dimension; each must be non-empty
//   - opts: Optional configuration functions (see EncoderOption)
//
// Returns:
//   - *Encoder: The built encoder
//   - error: *errs.EmptyDimensionError, errs.ErrSpaceOverflow, errs.ErrSpaceLimitExceeded,
//     or an option error. No encoder is returned on failure.
func New(dimensions [][]uint32, opts ...EncoderOption) (*Encoder, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	exact := cfg.mode == format.MembershipExact
	fixed := make([]uint32, len(dimensions))
	plans := make([]DimensionPlan, 0, len(dimensions))
	var members []*membership.Set
	if exact {
		members = make([]*membership.Set, 0, len(dimensions))
	}

	carry := uint64(1)
	for i, values := range dimensions {
		kind, err := ClassifyDimension(i, values)
		if err != nil {
			return nil, err
		}

		if kind == KindFixed {
			fixed[i] = values[0]
			logDimension(cfg.logger, i, kind, values[0], values[0], 0, nil)

			continue
		}

		plan, err := NewDimensionPlan(i, values, carry)
		if err != nil {
			return nil, err
		}

		carry, err = growSpace(carry, plan)
		if err != nil {
			return nil, err
		}

		plans = append(plans, plan)
		var set *membership.Set
		if exact {
			set = membership.New(values)
			members = append(members, set)
		}
		logDimension(cfg.logger, i, kind, plan.Min, plan.Max, plan.Stride, set)
	}

	e, err := newEncoder(cfg, fixed, plans, members, carry)
	if err != nil {
		return nil, err
	}

	if ce := cfg.logger.Check(zap.DebugLevel, "encoder built"); ce != nil {
		ce.Write(
			zap.Int("dimensions", len(fixed)),
			zap.Int("ranged", len(plans)),
			zap.Uint64("space", carry),
			zap.Stringer("membership", cfg.mode),
		)
	}

	return e, nil
}

// newEncoder assembles an encoder from validated plans. size is the product of all range sizes.
func newEncoder(cfg *EncoderConfig, fixed []uint32, plans []DimensionPlan, members []*membership.Set, size uint64) (*Encoder, error) {
	if cfg.maxSpace > 0 && size > cfg.maxSpace {
		return nil, fmt.Errorf("%w: space %d, limit %d", errs.ErrSpaceLimitExceeded, size, cfg.maxSpace)
	}

	planIndex := make([]int, len(fixed))
	for i := range planIndex {
		planIndex[i] = -1
	}
	for i, p := range plans {
		planIndex[p.Dimension] = i
	}

	exact := cfg.mode == format.MembershipExact
	minCoords := 0
	switch {
	case exact:
		// fixed dimensions are checked too
		minCoords = len(fixed)
	case len(plans) > 0:
		minCoords = plans[len(plans)-1].Dimension + 1
	}

	return &Encoder{
		fixed:     fixed,
		plans:     plans,
		planIndex: planIndex,
		members:   members,
		exact:     exact,
		size:      size,
		minCoords: minCoords,
		bigEndian: cfg.bigEndian,
	}, nil
}

// growSpace multiplies the running carry by the plan's range size.
func growSpace(carry uint64, plan DimensionPlan) (uint64, error) {
	hi, lo := bits.Mul64(carry, plan.RangeSize())
	if hi != 0 {
		return 0, fmt.Errorf("%w: dimension %d with range size %d on top of space %d",
			errs.ErrSpaceOverflow, plan.Dimension, plan.RangeSize(), carry)
	}

	return lo, nil
}

// logDimension writes one debug entry per dimension. set is nil outside strict builds.
func logDimension(logger *zap.Logger, dimension int, kind DimensionKind, minValue, maxValue uint32, stride uint64, set *membership.Set) {
	ce := logger.Check(zap.DebugLevel, "dimension classified")
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.Int("dimension", dimension),
		zap.Stringer("kind", kind),
		zap.Uint32("min", minValue),
		zap.Uint32("max", maxValue),
		zap.Uint64("stride", stride),
	}
	if set != nil {
		fields = append(fields, zap.Uint64("declared", set.Cardinality()))
	}
	ce.Write(fields...)
}

// Encode returns the linear index of coords: the sum of Stride * (coords[Dimension] - Min)
// over every ranged dimension.
//
// coords must hold at least MinCoordinates values. Coordinates of fixed dimensions are
// ignored unless the encoder was built with WithStrictMembership.
//
// Returns:
//   - uint64: The linear index, in [0, MaxIndex()]
//   - error: errs.ErrCoordinateCount, *errs.OutOfRangeError, or *errs.NotDeclaredError
//     in strict mode
func (e *Encoder) Encode(coords []uint32) (uint64, error) {
	if len(coords) < e.minCoords {
		return 0, fmt.Errorf("%w: got %d, need %d", errs.ErrCoordinateCount, len(coords), e.minCoords)
	}

	if e.exact {
		return e.encodeExact(coords)
	}

	var index uint64
	for i := range e.plans {
		p := &e.plans[i]
		off := coords[p.Dimension] - p.Min
		if off > p.Max-p.Min {
			return 0, outOfRange(p, coords[p.Dimension])
		}
		index += p.Stride * uint64(off)
	}

	return index, nil
}

func (e *Encoder) encodeExact(coords []uint32) (uint64, error) {
	for d, pi := range e.planIndex {
		if pi < 0 && coords[d] != e.fixed[d] {
			return 0, &errs.NotDeclaredError{Dimension: d, Value: coords[d]}
		}
	}

	var index uint64
	for i := range e.plans {
		p := &e.plans[i]
		v := coords[p.Dimension]
		off := v - p.Min
		if off > p.Max-p.Min {
			return 0, outOfRange(p, v)
		}
		if !e.members[i].Contains(v) {
			return 0, &errs.NotDeclaredError{Dimension: p.Dimension, Value: v}
		}
		index += p.Stride * uint64(off)
	}

	return index, nil
}

func outOfRange(p *DimensionPlan, v uint32) error {
	return &errs.OutOfRangeError{Dimension: p.Dimension, Value: v, Min: p.Min, Max: p.Max}
}

// NumDimensions returns the number of dimensions, fixed and ranged.
func (e *Encoder) NumDimensions() int {
	return len(e.fixed)
}

// NumRanged returns the number of ranged dimensions.
func (e *Encoder) NumRanged() int {
	return len(e.plans)
}

// Plans returns a copy of the ranged dimension plans in tuple order.
func (e *Encoder) Plans() []DimensionPlan {
	return slices.Clone(e.plans)
}

// Plan returns the plan of a dimension, false when it is fixed or out of range.
func (e *Encoder) Plan(dimension int) (DimensionPlan, bool) {
	if dimension < 0 || dimension >= len(e.planIndex) || e.planIndex[dimension] < 0 {
		return DimensionPlan{}, false
	}

	return e.plans[e.planIndex[dimension]], true
}

// FixedValues returns a copy of the per-dimension fixed values.
// Slots of ranged dimensions are zero.
func (e *Encoder) FixedValues() []uint32 {
	return slices.Clone(e.fixed)
}

// FixedValue returns the declared value of a fixed dimension, false when it is ranged or out of range.
func (e *Encoder) FixedValue(dimension int) (uint32, bool) {
	if e.Kind(dimension) != KindFixed {
		return 0, false
	}

	return e.fixed[dimension], true
}

// Kind returns the kind of a dimension, 0 when dimension is out of range.
func (e *Encoder) Kind(dimension int) DimensionKind {
	if dimension < 0 || dimension >= len(e.planIndex) {
		return 0
	}
	if e.planIndex[dimension] < 0 {
		return KindFixed
	}

	return KindRanged
}

// Size returns the number of addressable indexes, the product of every range size.
// It is 1 when no dimension is ranged.
func (e *Encoder) Size() uint64 {
	return e.size
}

// MaxIndex returns the largest index Encode can return, Size() - 1.
func (e *Encoder) MaxIndex() uint64 {
	return e.size - 1
}

// MinCoordinates returns the minimum tuple length accepted by Encode.
func (e *Encoder) MinCoordinates() int {
	return e.minCoords
}

// MembershipMode returns how coordinates are validated.
func (e *Encoder) MembershipMode() format.MembershipMode {
	if e.exact {
		return format.MembershipExact
	}

	return format.MembershipBounds
}

func (e *Encoder) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Encoder{dimensions:%d, space:%d, membership:%s, plans:[", len(e.fixed), e.size, e.MembershipMode())
	for i, p := range e.plans {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]}")

	return sb.String()
}
