package abi

import (
	"encoding/binary"
	"fmt"
)

// FixedBytesCodec encodes bytes<N>: N payload bytes right-padded to a word.
type FixedBytesCodec struct {
	name string
	size int
}

// NewFixedBytesCodec builds the codec for bytes<size>, 1 <= size <= 32.
// The parser enforces the bound; the codec assumes it.
func NewFixedBytesCodec(size int) *FixedBytesCodec {
	return &FixedBytesCodec{
		name: fmt.Sprintf("bytes%d", size),
		size: size,
	}
}

func (c *FixedBytesCodec) Name() string {
	return c.name
}

func (c *FixedBytesCodec) IsDynamic() bool {
	return false
}

func (c *FixedBytesCodec) StaticSize() int {
	return WordSize
}

func (c *FixedBytesCodec) EncodeFrame(value Value) ([]byte, error) {
	bz, err := value.AsBytes()
	if err != nil {
		return nil, err
	}
	if len(bz) != c.size {
		return nil, fmt.Errorf("%w: %s payload is %d bytes", ErrInvalidData, c.name, len(bz))
	}

	buf := make([]byte, WordSize)
	copy(buf, bz)
	return buf, nil
}

func (c *FixedBytesCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	w, err := word(data, offset)
	if err != nil {
		return Value{}, err
	}

	bz := make([]byte, c.size)
	copy(bz, w)
	return NewBytes(bz), nil
}

// DynamicBytesCodec encodes bytes: a length word followed by the payload,
// right-padded to the next word boundary.
type DynamicBytesCodec struct{}

func (DynamicBytesCodec) Name() string {
	return "bytes"
}

func (DynamicBytesCodec) IsDynamic() bool {
	return true
}

func (DynamicBytesCodec) StaticSize() int {
	return WordSize
}

func (DynamicBytesCodec) EncodeFrame(value Value) ([]byte, error) {
	bz, err := value.AsBytes()
	if err != nil {
		return nil, err
	}
	return encodeLengthPrefixed(bz), nil
}

func (DynamicBytesCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	bz, err := decodeLengthPrefixed(data, offset)
	if err != nil {
		return Value{}, err
	}
	return NewBytes(bz), nil
}

func encodeLengthPrefixed(payload []byte) []byte {
	buf := make([]byte, WordSize+Pad32(len(payload)))
	binary.BigEndian.PutUint64(buf[24:WordSize], uint64(len(payload)))
	copy(buf[WordSize:], payload)
	return buf
}

func decodeLengthPrefixed(data []byte, offset int) ([]byte, error) {
	w, err := word(data, offset)
	if err != nil {
		return nil, err
	}
	length, err := DecodeSize(w)
	if err != nil {
		return nil, err
	}

	payload, err := frameAt(data, offset+WordSize)
	if err != nil {
		return nil, err
	}
	if len(payload) < length {
		return nil, ErrInvalidData
	}

	bz := make([]byte, length)
	copy(bz, payload)
	return bz, nil
}
