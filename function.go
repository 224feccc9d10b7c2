package abi

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorLength is the size of the function selector prefixing calldata.
const SelectorLength = 4

// FunctionSpec bundles a contract function's name, its 4-byte selector and
// the codecs for its arguments and returns. Constructed once at startup and
// shared by every call site.
type FunctionSpec struct {
	name     string
	selector [SelectorLength]byte
	args     *TupleCodec
	returns  *TupleCodec
}

// NewFunction builds a FunctionSpec from the function name and the textual
// argument and return types. The selector is the first 4 bytes of the
// Keccak-256 hash of the canonical signature "name(t1,t2,…)".
func NewFunction(name string, args, returns []string) (*FunctionSpec, error) {
	argCodec, err := Parse(args)
	if err != nil {
		return nil, err
	}
	retCodec, err := Parse(returns)
	if err != nil {
		return nil, err
	}

	var selector [SelectorLength]byte
	copy(selector[:], crypto.Keccak256([]byte(name+argCodec.Name())))

	return &FunctionSpec{
		name:     name,
		selector: selector,
		args:     argCodec,
		returns:  retCodec,
	}, nil
}

func (f *FunctionSpec) Name() string {
	return f.name
}

// Signature returns the canonical signature string the selector hashes.
func (f *FunctionSpec) Signature() string {
	return f.name + f.args.Name()
}

func (f *FunctionSpec) Selector() [SelectorLength]byte {
	return f.selector
}

// Args returns the argument tuple codec.
func (f *FunctionSpec) Args() *TupleCodec {
	return f.args
}

// Returns returns the return tuple codec.
func (f *FunctionSpec) Returns() *TupleCodec {
	return f.returns
}

// Encode builds the call payload: the selector followed by the encoded
// argument tuple.
func (f *FunctionSpec) Encode(args []Value) ([]byte, error) {
	encoded, err := f.args.EncodeFrame(NewTuple(args...))
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, SelectorLength+len(encoded))
	payload = append(payload, f.selector[:]...)
	return append(payload, encoded...), nil
}

// Decode decodes a call response. The selector never appears in return
// payloads: decoding starts at offset 0 of the response bytes.
func (f *FunctionSpec) Decode(data []byte) ([]Value, error) {
	value, err := Decode(f.returns, data)
	if err != nil {
		return nil, err
	}
	return value.AsTuple()
}
