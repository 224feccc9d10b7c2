package abi

import (
	"strings"
)

// StringCodec encodes string like dynamic bytes. Decoded payloads are
// interpreted as UTF-8 with invalid sequences replaced by U+FFFD.
type StringCodec struct{}

func (StringCodec) Name() string {
	return "string"
}

func (StringCodec) IsDynamic() bool {
	return true
}

func (StringCodec) StaticSize() int {
	return WordSize
}

func (StringCodec) EncodeFrame(value Value) ([]byte, error) {
	s, err := value.AsString()
	if err != nil {
		return nil, err
	}
	return encodeLengthPrefixed([]byte(s)), nil
}

func (StringCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	bz, err := decodeLengthPrefixed(data, offset)
	if err != nil {
		return Value{}, err
	}
	return NewString(strings.ToValidUTF8(string(bz), "�")), nil
}
