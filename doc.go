/*
Package abi serializes and deserializes structured values to and from the
canonical 32-byte-word binary encoding used by contract calls on
EVM-compatible chains.

The package is built around three pieces:

  - Value, a tagged sum covering the ABI type universe (addresses, booleans,
    integers, bytes, strings, arrays, tuples);
  - Codec, a composable encoder/decoder tree implementing the head/tail
    layout protocol (static and dynamic tails, offset pointers, alignment,
    length prefixes);
  - Parse, which lifts textual type signatures such as "(uint256,bytes)[]"
    into codec trees.

FunctionSpec combines the three with the 4-byte Keccak-256 selector into the
unit used by contract-call requests.

Quick Start

	fn, err := abi.NewFunction("balanceOf", []string{"address"}, []string{"uint256"})
	if err != nil {
		// ...
	}

	owner, err := abi.NewAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	calldata, err := fn.Encode([]abi.Value{owner})

	// ... fire calldata through a channel, then:
	results, err := fn.Decode(response)
	balance, err := results[0].AsUint()

Codecs can also be used standalone:

	codec, err := abi.Parse([]string{"uint256", "string"})
	data, err := abi.Encode(codec, abi.NewTuple(abi.NewUint64(1), abi.NewString("abc")))
	value, err := abi.Decode(codec, data)

Codecs are immutable after construction and safe to share across goroutines.
Integer widths are a property of the codec, not the value: on encode values
are reduced modulo 2^N, on decode only the low N/8 bytes of the word are
read.

The fixed, ufixed and function types parse but are rejected at codec
construction with ErrUnsupportedType.
*/
package abi
