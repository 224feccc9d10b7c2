package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringEncode(t *testing.T) {
	encoded, err := Encode(StringCodec{}, NewString("HEYBIT"))
	require.NoError(t, err)
	require.Equal(t, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000006",
		"4845594249540000000000000000000000000000000000000000000000000000",
	), encoded)
}

func TestStringDecode(t *testing.T) {
	value, err := Decode(StringCodec{}, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000006",
		"4845594249540000000000000000000000000000000000000000000000000000",
	))
	require.NoError(t, err)

	s, err := value.AsString()
	require.NoError(t, err)
	require.Equal(t, "HEYBIT", s)
}

func TestStringDecodeInvalidUTF8(t *testing.T) {
	// 0xff 0xfe is not valid UTF-8; decoding is lossy
	value, err := Decode(StringCodec{}, mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000003",
		"fffe610000000000000000000000000000000000000000000000000000000000",
	))
	require.NoError(t, err)

	s, err := value.AsString()
	require.NoError(t, err)
	require.Equal(t, "�a", s)
}

func TestStringTypeMismatch(t *testing.T) {
	_, err := Encode(StringCodec{}, NewBytes([]byte("HEYBIT")))
	require.ErrorIs(t, err, ErrInvalidData)
}
