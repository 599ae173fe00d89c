package encoder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/tuplekey/errs"
	"github.com/arloliu/tuplekey/format"
	"github.com/arloliu/tuplekey/internal/options"
)

// EncoderConfig holds the build options of an Encoder.
type EncoderConfig struct {
	mode      format.MembershipMode
	maxSpace  uint64 // 0 means no limit beyond uint64
	bigEndian bool
	logger    *zap.Logger
}

// NewEncoderConfig creates a config with the defaults: bounds membership,
// no space limit, little-endian layouts and a no-op logger.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		mode:   format.MembershipBounds,
		logger: zap.NewNop(),
	}
}

// MembershipMode returns the configured membership mode.
func (c *EncoderConfig) MembershipMode() format.MembershipMode {
	return c.mode
}

// MaxSpace returns the configured space limit, 0 when unlimited.
func (c *EncoderConfig) MaxSpace() uint64 {
	return c.maxSpace
}

// IsBigEndian returns whether layouts are written big-endian.
func (c *EncoderConfig) IsBigEndian() bool {
	return c.bigEndian
}

// Logger returns the build logger.
func (c *EncoderConfig) Logger() *zap.Logger {
	return c.logger
}

func (c *EncoderConfig) setMembershipMode(mode format.MembershipMode) error {
	switch mode {
	case format.MembershipBounds, format.MembershipExact:
		c.mode = mode
		return nil
	default:
		return fmt.Errorf("invalid membership mode: %v", mode)
	}
}

func (c *EncoderConfig) setMaxSpace(limit uint64) error {
	if limit == 0 {
		return errs.ErrInvalidSpaceLimit
	}
	c.maxSpace = limit

	return nil
}

func (c *EncoderConfig) setLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithMembershipMode sets how coordinates are validated against declared values.
func WithMembershipMode(mode format.MembershipMode) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setMembershipMode(mode)
	})
}

// WithStrictMembership makes the encoder reject coordinates that lie within bounds
// but were not declared, and fixed coordinates that differ from their declared value.
// Index values of declared tuples are the same as in bounds mode.
func WithStrictMembership() EncoderOption {
	return WithMembershipMode(format.MembershipExact)
}

// WithMaxSpace fails the build with errs.ErrSpaceLimitExceeded when the addressable
// space (Size) would exceed limit. Useful when indexes address a dense array.
func WithMaxSpace(limit uint64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setMaxSpace(limit)
	})
}

// WithLittleEndian writes layout snapshots little-endian. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian writes layout snapshots big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = true
	})
}

// WithLogger sets the logger used while building. A nil logger disables logging.
func WithLogger(logger *zap.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setLogger(logger)
	})
}
