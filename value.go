package abi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindAddress Kind = iota
	KindBool
	KindInt
	KindUint
	KindBytes
	KindString
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is the universal payload moved by the codec tree: a tagged sum over
// the ABI type universe. Values are pure data; they carry no type width.
// Integer widths, fixed-bytes lengths and array element types are properties
// of the codec operating on the value.
type Value struct {
	kind    Kind
	address common.Address
	boolean bool
	number  *big.Int
	bytes   []byte
	str     string
	values  []Value
}

// NewAddress parses a 0x-prefixed or bare hex address of exactly 40
// characters.
func NewAddress(hexAddress string) (Value, error) {
	hexAddress = strings.TrimPrefix(hexAddress, "0x")
	bz, err := hex.DecodeString(hexAddress)
	if err != nil {
		return Value{}, fmt.Errorf("decode address: %w", err)
	}
	if len(bz) != common.AddressLength {
		return Value{}, fmt.Errorf("%w: address is %d bytes, want %d", ErrInvalidData, len(bz), common.AddressLength)
	}
	return NewAddressFromBytes(common.BytesToAddress(bz)), nil
}

func NewAddressFromBytes(address common.Address) Value {
	return Value{kind: KindAddress, address: address}
}

func NewBool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

func NewInt(n *big.Int) Value {
	return Value{kind: KindInt, number: n}
}

func NewInt64(n int64) Value {
	return NewInt(big.NewInt(n))
}

func NewUint(n *big.Int) Value {
	return Value{kind: KindUint, number: n}
}

func NewUint64(n uint64) Value {
	return NewUint(new(big.Int).SetUint64(n))
}

func NewBytes(bz []byte) Value {
	return Value{kind: KindBytes, bytes: bz}
}

func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

func NewArray(values []Value) Value {
	return Value{kind: KindArray, values: values}
}

func NewTuple(values ...Value) Value {
	return Value{kind: KindTuple, values: values}
}

// Kind returns the variant tag. The tag is authoritative: accessors for any
// other variant fail with ErrInvalidData.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: value is %s, not %s", ErrInvalidData, v.kind, want)
}

func (v Value) AsAddress() (common.Address, error) {
	if v.kind != KindAddress {
		return common.Address{}, v.mismatch(KindAddress)
	}
	return v.address, nil
}

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.boolean, nil
}

func (v Value) AsInt() (*big.Int, error) {
	if v.kind != KindInt {
		return nil, v.mismatch(KindInt)
	}
	return v.number, nil
}

func (v Value) AsUint() (*big.Int, error) {
	if v.kind != KindUint {
		return nil, v.mismatch(KindUint)
	}
	return v.number, nil
}

func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, v.mismatch(KindBytes)
	}
	return v.bytes, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.str, nil
}

func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}
	return v.values, nil
}

func (v Value) AsTuple() ([]Value, error) {
	if v.kind != KindTuple {
		return nil, v.mismatch(KindTuple)
	}
	return v.values, nil
}

// Equal reports deep structural equality. Numbers compare by value, so two
// big.Int representations of the same integer are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAddress:
		return v.address == other.address
	case KindBool:
		return v.boolean == other.boolean
	case KindInt, KindUint:
		return v.number.Cmp(other.number) == 0
	case KindBytes:
		return string(v.bytes) == string(other.bytes)
	case KindString:
		return v.str == other.str
	case KindArray, KindTuple:
		if len(v.values) != len(other.values) {
			return false
		}
		for i := range v.values {
			if !v.values[i].Equal(other.values[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value for logs and error messages. It is not an ABI
// serialization.
func (v Value) String() string {
	switch v.kind {
	case KindAddress:
		return v.address.Hex()
	case KindBool:
		return fmt.Sprintf("%t", v.boolean)
	case KindInt, KindUint:
		return v.number.String()
	case KindBytes:
		return "0x" + hex.EncodeToString(v.bytes)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindArray, KindTuple:
		parts := make([]string, len(v.values))
		for i, elem := range v.values {
			parts[i] = elem.String()
		}
		if v.kind == KindArray {
			return "[" + strings.Join(parts, ",") + "]"
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return v.kind.String()
	}
}
