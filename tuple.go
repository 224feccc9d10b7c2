package abi

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// TupleCodec encodes a positional record as a head region followed by a tail
// region. Static children sit inline in the head; dynamic children leave a
// 32-byte offset slot behind and append their encoding to the tail. Offsets
// count bytes from the start of the tuple's own frame.
type TupleCodec struct {
	name   string
	codecs []Codec
}

func NewTupleCodec(codecs []Codec) *TupleCodec {
	names := make([]string, len(codecs))
	for i, codec := range codecs {
		names[i] = codec.Name()
	}
	return &TupleCodec{
		name:   "(" + strings.Join(names, ",") + ")",
		codecs: codecs,
	}
}

func (c *TupleCodec) Name() string {
	return c.name
}

func (c *TupleCodec) IsDynamic() bool {
	for _, codec := range c.codecs {
		if codec.IsDynamic() {
			return true
		}
	}
	return false
}

func (c *TupleCodec) StaticSize() int {
	if c.IsDynamic() {
		return WordSize
	}
	return headSize(c.codecs)
}

// Len returns the number of child codecs.
func (c *TupleCodec) Len() int {
	return len(c.codecs)
}

// Codecs returns the child codecs in positional order. The slice is shared;
// callers must not mutate it.
func (c *TupleCodec) Codecs() []Codec {
	return c.codecs
}

func (c *TupleCodec) EncodeFrame(value Value) ([]byte, error) {
	values, err := value.AsTuple()
	if err != nil {
		return nil, err
	}
	if len(values) != len(c.codecs) {
		panic(fmt.Sprintf("tuple codec %s asked to encode %d values", c.name, len(values)))
	}
	return encodeComposite(c.codecs, values)
}

func (c *TupleCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	frame, err := frameAt(data, offset)
	if err != nil {
		return Value{}, err
	}

	values, err := decodeComposite(c.codecs, frame)
	if err != nil {
		return Value{}, err
	}
	return NewTuple(values...), nil
}

func headSize(codecs []Codec) int {
	var size int
	for _, codec := range codecs {
		size += codec.StaticSize()
	}
	return size
}

// encodeComposite lays out one frame of children: the head in child order,
// then the tails of the dynamic children in child order. Every head offset
// equals headSize plus the accumulated length of the preceding tails.
func encodeComposite(codecs []Codec, values []Value) ([]byte, error) {
	size := headSize(codecs)

	head := make([]byte, 0, size)
	var tail []byte
	for i, codec := range codecs {
		chunk, err := codec.EncodeFrame(values[i])
		if err != nil {
			return nil, err
		}

		if codec.IsDynamic() {
			var slot [WordSize]byte
			binary.BigEndian.PutUint64(slot[24:], uint64(size+len(tail)))
			head = append(head, slot[:]...)
			tail = append(tail, chunk...)
		} else {
			head = append(head, chunk...)
		}
	}

	return append(head, tail...), nil
}

// decodeComposite walks the head of a frame. Static children decode in
// place; dynamic children decode at the offset their head slot names,
// relative to the frame.
func decodeComposite(codecs []Codec, frame []byte) ([]Value, error) {
	values := make([]Value, 0, len(codecs))

	var head int
	for _, codec := range codecs {
		var (
			value Value
			err   error
		)
		if codec.IsDynamic() {
			w, werr := word(frame, head)
			if werr != nil {
				return nil, werr
			}
			offset, oerr := DecodeSize(w)
			if oerr != nil {
				return nil, oerr
			}
			value, err = codec.DecodeFrame(frame, offset)
		} else {
			value, err = codec.DecodeFrame(frame, head)
		}
		if err != nil {
			return nil, err
		}

		values = append(values, value)
		head += codec.StaticSize()
	}

	return values, nil
}
