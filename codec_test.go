package abi

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustHex joins 32-byte hex lines into a buffer.
func mustHex(t *testing.T, lines ...string) []byte {
	t.Helper()
	bz, err := hex.DecodeString(strings.Join(lines, ""))
	require.NoError(t, err)
	return bz
}

// requireRoundTrip encodes value, checks word alignment, and decodes it back.
func requireRoundTrip(t *testing.T, codec Codec, value Value) {
	t.Helper()

	encoded, err := Encode(codec, value)
	require.NoError(t, err)
	require.Zero(t, len(encoded)%WordSize, "encoding of %s is not word aligned", codec.Name())

	decoded, err := Decode(codec, encoded)
	require.NoError(t, err)
	require.True(t, value.Equal(decoded), "%s round trip: want %s, got %s", codec.Name(), value, decoded)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		types []string
		value Value
	}{
		{
			types: []string{"bool", "uint256"},
			value: NewTuple(NewBool(true), NewUint64(0xFFFF)),
		},
		{
			types: []string{"address", "int8"},
			value: NewTuple(mustAddress(t, "feedfacefeedfacefeedfacefeedfacefeedface"), NewInt64(-1)),
		},
		{
			types: []string{"uint", "uint32[]", "bytes10", "bytes"},
			value: NewTuple(
				NewUint64(0x123),
				NewArray([]Value{NewUint64(0x456), NewUint64(0x789)}),
				NewBytes([]byte("1234567890")),
				NewBytes([]byte("Hello, world!")),
			),
		},
		{
			types: []string{"string[2]"},
			value: NewTuple(NewArray([]Value{NewString("one"), NewString("two")})),
		},
		{
			types: []string{"uint256[3][]"},
			value: NewTuple(NewArray([]Value{
				NewArray([]Value{NewUint64(1), NewUint64(2), NewUint64(3)}),
				NewArray([]Value{NewUint64(4), NewUint64(5), NewUint64(6)}),
			})),
		},
		{
			// three levels of dynamic nesting
			types: []string{"string[][]"},
			value: NewTuple(NewArray([]Value{
				NewArray([]Value{NewString("a"), NewString("bc")}),
				NewArray([]Value{}),
				NewArray([]Value{NewString("def")}),
			})),
		},
		{
			types: []string{"(uint256,(uint256,uint256[]))"},
			value: NewTuple(NewTuple(
				NewUint64(1),
				NewTuple(NewUint64(2), NewArray([]Value{NewUint64(3), NewUint64(4)})),
			)),
		},
		{
			types: []string{"(address,bytes)[]"},
			value: NewTuple(NewArray([]Value{
				NewTuple(mustAddress(t, "1111111111111111111111111111111111111111"), NewBytes([]byte("Hello, world!"))),
				NewTuple(mustAddress(t, "2222222222222222222222222222222222222222"), NewBytes(nil)),
			})),
		},
		{
			// fixed-length array of dynamic tuples
			types: []string{"(string,uint8)[2]"},
			value: NewTuple(NewArray([]Value{
				NewTuple(NewString("left"), NewUint64(1)),
				NewTuple(NewString("right"), NewUint64(2)),
			})),
		},
		{
			types: []string{},
			value: NewTuple(),
		},
	}

	for _, tt := range tests {
		name := "(" + strings.Join(tt.types, ",") + ")"
		t.Run(name, func(t *testing.T) {
			codec, err := Parse(tt.types)
			require.NoError(t, err)
			requireRoundTrip(t, codec, tt.value)
		})
	}
}

func TestDynamicTagLaw(t *testing.T) {
	tests := []struct {
		typ     string
		dynamic bool
	}{
		{"bool", false},
		{"address", false},
		{"uint256", false},
		{"int8", false},
		{"bytes32", false},
		{"string", true},
		{"bytes", true},
		{"uint8[]", true},
		{"string[]", true},
		{"uint8[4]", false},
		{"string[4]", true},
		{"(uint256,address)", false},
		{"(uint256,bytes)", true},
		{"(uint256,bytes)[3]", true},
		{"((uint8,bool)[2],address)", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			codec, err := ParseType(tt.typ)
			require.NoError(t, err)
			require.Equal(t, tt.dynamic, codec.IsDynamic())
		})
	}
}

func mustAddress(t *testing.T, hexAddress string) Value {
	t.Helper()
	value, err := NewAddress(hexAddress)
	require.NoError(t, err)
	return value
}
