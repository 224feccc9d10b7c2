package abi

import (
	"encoding/binary"
	"fmt"
)

// FixedArrayCodec encodes T[k]: the body of a k-tuple of T, with no length
// prefix. A fixed array of dynamic elements keeps the head/tail layout
// inside the body, offsets measured from the body start.
type FixedArrayCodec struct {
	name string
	size int
	elem Codec
}

func NewFixedArrayCodec(size int, elem Codec) *FixedArrayCodec {
	return &FixedArrayCodec{
		name: fmt.Sprintf("%s[%d]", elem.Name(), size),
		size: size,
		elem: elem,
	}
}

func (c *FixedArrayCodec) Name() string {
	return c.name
}

func (c *FixedArrayCodec) IsDynamic() bool {
	return c.elem.IsDynamic()
}

func (c *FixedArrayCodec) StaticSize() int {
	if c.IsDynamic() {
		return WordSize
	}
	return c.size * c.elem.StaticSize()
}

func (c *FixedArrayCodec) EncodeFrame(value Value) ([]byte, error) {
	values, err := value.AsArray()
	if err != nil {
		return nil, err
	}
	if len(values) != c.size {
		return nil, fmt.Errorf("%w: %s holds %d elements", ErrInvalidData, c.name, len(values))
	}
	return encodeComposite(repeat(c.elem, c.size), values)
}

func (c *FixedArrayCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	frame, err := frameAt(data, offset)
	if err != nil {
		return Value{}, err
	}

	values, err := decodeComposite(repeat(c.elem, c.size), frame)
	if err != nil {
		return Value{}, err
	}
	return NewArray(values), nil
}

// DynamicArrayCodec encodes T[]: a length word followed by the body of an
// n-tuple of T. Offsets inside the body count from after the length word.
type DynamicArrayCodec struct {
	name string
	elem Codec
}

func NewDynamicArrayCodec(elem Codec) *DynamicArrayCodec {
	return &DynamicArrayCodec{
		name: elem.Name() + "[]",
		elem: elem,
	}
}

func (c *DynamicArrayCodec) Name() string {
	return c.name
}

func (c *DynamicArrayCodec) IsDynamic() bool {
	return true
}

func (c *DynamicArrayCodec) StaticSize() int {
	return WordSize
}

func (c *DynamicArrayCodec) EncodeFrame(value Value) ([]byte, error) {
	values, err := value.AsArray()
	if err != nil {
		return nil, err
	}

	body, err := encodeComposite(repeat(c.elem, len(values)), values)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, WordSize, WordSize+len(body))
	binary.BigEndian.PutUint64(buf[24:], uint64(len(values)))
	return append(buf, body...), nil
}

func (c *DynamicArrayCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	w, err := word(data, offset)
	if err != nil {
		return Value{}, err
	}
	length, err := DecodeSize(w)
	if err != nil {
		return Value{}, err
	}

	body, err := frameAt(data, offset+WordSize)
	if err != nil {
		return Value{}, err
	}
	// every element consumes at least one body word, inline or as a slot
	if length > len(body)/WordSize {
		return Value{}, ErrInvalidData
	}

	values, err := decodeComposite(repeat(c.elem, length), body)
	if err != nil {
		return Value{}, err
	}
	return NewArray(values), nil
}

func repeat(codec Codec, n int) []Codec {
	codecs := make([]Codec, n)
	for i := range codecs {
		codecs[i] = codec
	}
	return codecs
}
