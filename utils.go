package abi

import (
	"math"

	"github.com/holiman/uint256"
)

// WordSize is the alignment unit of the encoding: every ABI value occupies a
// whole number of 32-byte words.
const WordSize = 32

// Pad32 rounds n up to the next multiple of 32.
func Pad32(n int) int {
	return (n + 31) / 32 * 32
}

// word returns the 32-byte word starting at offset.
func word(data []byte, offset int) ([]byte, error) {
	if offset < 0 || len(data) < offset+WordSize {
		return nil, ErrInvalidData
	}
	return data[offset : offset+WordSize], nil
}

// frameAt slices the frame beginning at offset. A frame may be empty (the
// zero tuple encodes to no bytes).
func frameAt(data []byte, offset int) ([]byte, error) {
	if offset < 0 || offset > len(data) {
		return nil, ErrInvalidData
	}
	return data[offset:], nil
}

// DecodeSize decodes a length or offset word. Values that do not fit the
// platform int cannot name a position in any real buffer.
func DecodeSize(data []byte) (int, error) {
	var n uint256.Int
	n.SetBytes32(data)

	result, overflow := n.Uint64WithOverflow()
	if overflow || result > math.MaxInt {
		return 0, ErrInvalidData
	}

	return int(result), nil
}
