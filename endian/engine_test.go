package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngine(t *testing.T) {
	tests := []struct {
		name      string
		bigEndian bool
		want      EndianEngine
	}{
		{"little endian", false, binary.LittleEndian},
		{"big endian", true, binary.BigEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := GetEngine(tt.bigEndian)
			require.Equal(t, tt.want, engine)
		})
	}
}

func TestEngineRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint32(nil, 10000002)
		buf = engine.AppendUint64(buf, 1<<40+19)

		require.Len(t, buf, 12)
		require.Equal(t, uint32(10000002), engine.Uint32(buf[0:4]))
		require.Equal(t, uint64(1<<40+19), engine.Uint64(buf[4:12]))
	}
}

func TestByteOrderDiffers(t *testing.T) {
	little := GetLittleEndianEngine().AppendUint32(nil, 0x01020304)
	big := GetBigEndianEngine().AppendUint32(nil, 0x01020304)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, little)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, big)
}
