package abi

import (
	"fmt"
	"math/big"
)

// UintCodec encodes and decodes uint<N>. The width is a property of the
// codec, not of the value: on encode the value is reduced modulo 2^N, on
// decode only the low N/8 bytes of the word are read.
type UintCodec struct {
	name    string
	size    int
	modulus *big.Int
}

// NewUintCodec builds the codec for uint<size>. The parser validates that
// size is a multiple of 8 in [8,256]; the codec assumes it.
func NewUintCodec(size int) *UintCodec {
	return &UintCodec{
		name:    fmt.Sprintf("uint%d", size),
		size:    size,
		modulus: modulus(size),
	}
}

func (c *UintCodec) Name() string {
	return c.name
}

func (c *UintCodec) IsDynamic() bool {
	return false
}

func (c *UintCodec) StaticSize() int {
	return WordSize
}

func (c *UintCodec) EncodeFrame(value Value) ([]byte, error) {
	n, err := value.AsUint()
	if err != nil {
		return nil, err
	}
	return encodeReduced(n, c.modulus), nil
}

func (c *UintCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	w, err := word(data, offset)
	if err != nil {
		return Value{}, err
	}
	return NewUint(new(big.Int).SetBytes(w[WordSize-c.size/8:])), nil
}

// IntCodec encodes and decodes int<N> as two's complement over the low N/8
// bytes of the word.
type IntCodec struct {
	name    string
	size    int
	modulus *big.Int
}

// NewIntCodec builds the codec for int<size>. Width constraints are the
// parser's responsibility, as for NewUintCodec.
func NewIntCodec(size int) *IntCodec {
	return &IntCodec{
		name:    fmt.Sprintf("int%d", size),
		size:    size,
		modulus: modulus(size),
	}
}

func (c *IntCodec) Name() string {
	return c.name
}

func (c *IntCodec) IsDynamic() bool {
	return false
}

func (c *IntCodec) StaticSize() int {
	return WordSize
}

func (c *IntCodec) EncodeFrame(value Value) ([]byte, error) {
	n, err := value.AsInt()
	if err != nil {
		return nil, err
	}
	return encodeReduced(n, c.modulus), nil
}

func (c *IntCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	w, err := word(data, offset)
	if err != nil {
		return Value{}, err
	}

	n := new(big.Int).SetBytes(w[WordSize-c.size/8:])
	// two's complement: a set high bit means the value wrapped below zero
	if n.Bit(c.size-1) == 1 {
		n.Sub(n, c.modulus)
	}
	return NewInt(n), nil
}

func modulus(size int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(size))
}

// encodeReduced reduces n modulo m into the non-negative representative and
// writes it big-endian into a fresh word.
func encodeReduced(n, m *big.Int) []byte {
	buf := make([]byte, WordSize)
	new(big.Int).Mod(n, m).FillBytes(buf)
	return buf
}
