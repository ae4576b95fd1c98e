// Package endian provides the byte order used by the settlement network wire
// format.
//
// Every fixed-width field of a transaction is unsigned big-endian. The package
// exposes that order through EndianEngine, which combines the standard
// library's ByteOrder and AppendByteOrder interfaces so encoders can append
// fields directly to a message buffer:
//
//	engine := endian.GetBigEndianEngine()
//	msg = engine.AppendUint32(msg, accountID)
//	msg = engine.AppendUint64(msg, validUntil)
//
// The returned engines are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.BigEndian satisfies it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the network byte order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendPadded appends src to dst left-padded with zero bytes to exactly width
// bytes, the way a minimal big-endian integer is widened to a fixed field.
//
// It reports false, leaving dst untouched, when src is longer than width.
func AppendPadded(dst, src []byte, width int) ([]byte, bool) {
	if len(src) > width {
		return dst, false
	}

	for range width - len(src) {
		dst = append(dst, 0)
	}

	return append(dst, src...), true
}
