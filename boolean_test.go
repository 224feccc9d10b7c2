package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanEncode(t *testing.T) {
	encoded, err := Encode(BooleanCodec{}, NewBool(false))
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "0000000000000000000000000000000000000000000000000000000000000000"), encoded)

	encoded, err = Encode(BooleanCodec{}, NewBool(true))
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "0000000000000000000000000000000000000000000000000000000000000001"), encoded)
}

func TestBooleanDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"zero", "0000000000000000000000000000000000000000000000000000000000000000", false},
		{"one", "0000000000000000000000000000000000000000000000000000000000000001", true},
		{"high bit", "8000000000000000000000000000000000000000000000000000000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Decode(BooleanCodec{}, mustHex(t, tt.data))
			require.NoError(t, err)

			b, err := value.AsBool()
			require.NoError(t, err)
			require.Equal(t, tt.expected, b)
		})
	}
}

func TestBooleanTypeMismatch(t *testing.T) {
	_, err := Encode(BooleanCodec{}, NewUint64(1))
	require.ErrorIs(t, err, ErrInvalidData)
}
