package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arloliu/tuplekey/errs"
	"github.com/arloliu/tuplekey/format"
	"github.com/arloliu/tuplekey/internal/options"
)

func TestNewEncoderConfig(t *testing.T) {
	cfg := NewEncoderConfig()

	require.Equal(t, format.MembershipBounds, cfg.MembershipMode())
	require.Zero(t, cfg.MaxSpace())
	require.False(t, cfg.IsBigEndian())
	require.NotNil(t, cfg.Logger())
}

func TestEncoderOptions(t *testing.T) {
	logger := zap.NewExample()

	cfg := NewEncoderConfig()
	err := options.Apply(cfg,
		WithStrictMembership(),
		WithMaxSpace(1<<20),
		WithBigEndian(),
		WithLogger(logger),
	)
	require.NoError(t, err)

	require.Equal(t, format.MembershipExact, cfg.MembershipMode())
	require.Equal(t, uint64(1<<20), cfg.MaxSpace())
	require.True(t, cfg.IsBigEndian())
	require.Same(t, logger, cfg.Logger())

	t.Run("later options win", func(t *testing.T) {
		cfg := NewEncoderConfig()
		err := options.Apply(cfg,
			WithBigEndian(), WithLittleEndian(),
			WithStrictMembership(), WithMembershipMode(format.MembershipBounds),
		)
		require.NoError(t, err)
		require.False(t, cfg.IsBigEndian())
		require.Equal(t, format.MembershipBounds, cfg.MembershipMode())
	})

	t.Run("invalid values", func(t *testing.T) {
		cfg := NewEncoderConfig()
		require.ErrorIs(t, options.Apply(cfg, WithMaxSpace(0)), errs.ErrInvalidSpaceLimit)
		require.Error(t, options.Apply(cfg, WithMembershipMode(0)))
		require.Equal(t, format.MembershipBounds, cfg.MembershipMode())
	})

	t.Run("nil logger", func(t *testing.T) {
		cfg := NewEncoderConfig()
		require.NoError(t, options.Apply(cfg, WithLogger(nil)))
		require.NotNil(t, cfg.Logger())
	})
}
