package membership

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuplekey/errs"
)

func TestSet(t *testing.T) {
	set := New([]uint32{3, 6, 8, 4, 2, 2, 44, 56, 67, 32, 123})

	require.Equal(t, uint64(10), set.Cardinality())
	require.Equal(t, uint32(2), set.Min())
	require.Equal(t, uint32(123), set.Max())

	for _, v := range []uint32{2, 44, 123} {
		require.True(t, set.Contains(v), "value %d", v)
	}
	for _, v := range []uint32{0, 5, 45, 124} {
		require.False(t, set.Contains(v), "value %d", v)
	}
}

func TestSet_DenseRange(t *testing.T) {
	values := make([]uint32, 0, 5000)
	for v := uint32(10000000); v < 10005000; v++ {
		values = append(values, v)
	}
	set := New(values)

	require.Equal(t, uint64(5000), set.Cardinality())
	require.True(t, set.Contains(10004999))
	require.False(t, set.Contains(10005000))

	data, err := set.Bytes()
	require.NoError(t, err)
	require.Less(t, len(data), 64, "run-optimized range should serialize compactly")
}

func TestSet_BytesRoundTrip(t *testing.T) {
	original := New([]uint32{0, 1, 9, 5})

	data, err := original.Bytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, original.Cardinality(), parsed.Cardinality())
	for v := uint32(0); v <= 10; v++ {
		require.Equal(t, original.Contains(v), parsed.Contains(v), "value %d", v)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		_, err := Parse([]byte{0xde, 0xad, 0xbe, 0xef})
		require.ErrorIs(t, err, errs.ErrInvalidMembershipPayload)
	})

	t.Run("empty set", func(t *testing.T) {
		data, err := New(nil).Bytes()
		require.NoError(t, err)

		_, err = Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidMembershipPayload)
	})
}
