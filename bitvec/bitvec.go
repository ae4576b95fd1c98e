// Package bitvec provides a fixed-length ordered sequence of bits with lossless
// conversion to and from big-endian byte buffers.
//
// # Bit Order
//
// A BitVector built by FromBytes is the reversed view of the buffer's natural
// reading order: index 0 addresses the least-significant bit of the last byte,
// index 8*len(buf)-1 the most-significant bit of the first byte. For a
// big-endian encoded integer this means index i is bit i of the integer.
//
// BytesBigEndian works in the opposite direction: every group of 8 bits becomes
// one output byte, and the first bit of a group becomes that byte's
// most-significant bit.
//
//	v := bitvec.FromBytes([]byte{0x80, 0x01})
//	v.Get(0)  // true, LSB of 0x01
//	v.Get(15) // true, MSB of 0x80
//
// # Thread Safety
//
// A BitVector is not safe for concurrent mutation. Package-level functions
// allocate their own working state and are safe for concurrent use.
package bitvec

import (
	"fmt"
	"strings"

	"github.com/arloliu/zkwire/errs"
)

// BitVector is an ordered sequence of bits of fixed length.
type BitVector struct {
	bits []bool
}

// New returns an all-false BitVector of length n.
// A negative n is treated as zero.
func New(n int) *BitVector {
	if n < 0 {
		n = 0
	}

	return &BitVector{bits: make([]bool, n)}
}

// FromBytes builds a BitVector of length 8*len(buf) from a big-endian buffer.
//
// The returned vector is the reversed view of the buffer: index 0 is the
// least-significant bit of the last byte.
func FromBytes(buf []byte) *BitVector {
	n := len(buf) * 8
	v := &BitVector{bits: make([]bool, n)}
	for i := range n {
		b := buf[len(buf)-1-i/8]
		v.bits[i] = (b>>(i%8))&1 == 1
	}

	return v
}

// Len returns the number of bits in the vector.
func (v *BitVector) Len() int {
	return len(v.bits)
}

// Set sets the bit at index to true.
func (v *BitVector) Set(index int) error {
	if err := v.checkIndex(index); err != nil {
		return err
	}
	v.bits[index] = true

	return nil
}

// Clear sets the bit at index to false.
func (v *BitVector) Clear(index int) error {
	if err := v.checkIndex(index); err != nil {
		return err
	}
	v.bits[index] = false

	return nil
}

// Get returns the bit at index.
func (v *BitVector) Get(index int) (bool, error) {
	if err := v.checkIndex(index); err != nil {
		return false, err
	}

	return v.bits[index], nil
}

// Reversed returns a new vector with the bit order inverted.
// The receiver is not modified.
func (v *BitVector) Reversed() *BitVector {
	n := len(v.bits)
	r := &BitVector{bits: make([]bool, n)}
	for i, bit := range v.bits {
		r.bits[n-1-i] = bit
	}

	return r
}

// BytesBigEndian packs the vector into bytes, 8 bits per byte, the first bit
// of each group becoming the most-significant bit of its byte.
//
// Returns errs.ErrLengthNotByteAligned if Len() is not a multiple of 8.
func (v *BitVector) BytesBigEndian() ([]byte, error) {
	if len(v.bits)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d", errs.ErrLengthNotByteAligned, len(v.bits))
	}

	out := make([]byte, len(v.bits)/8)
	for i, bit := range v.bits {
		if bit {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}

	return out, nil
}

// String renders the bits in index order as '0' and '1' characters.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(len(v.bits))
	for _, bit := range v.bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func (v *BitVector) checkIndex(index int) error {
	if index < 0 || index >= len(v.bits) {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, len(v.bits))
	}

	return nil
}

// ReverseBits reverses the whole bit string of buf: the byte order is inverted
// and so is the bit order inside every byte. ReverseBits is its own inverse.
//
// The input is not modified.
//
// Example:
//
//	bitvec.ReverseBits([]byte{0x12, 0x34}) // []byte{0x2c, 0x48}
func ReverseBits(buf []byte) []byte {
	// FromBytes already yields the reversed view; packing it back in index
	// order completes the reversal. The length is always byte aligned.
	out, _ := FromBytes(buf).BytesBigEndian()

	return out
}
