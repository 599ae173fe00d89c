// Package endian provides the byte order abstraction used by tuplekey layout snapshots.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so section
// codecs can both write into fixed buffers and append to growing ones with the same
// value. binary.LittleEndian and binary.BigEndian satisfy it directly.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, plan.Stride)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned engines
// are stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. It is the default layout byte order.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the big-endian engine when bigEndian is set, otherwise the little-endian one.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
