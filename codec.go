package abi

// Codec describes a single ABI type: its canonical name, its place in the
// head/tail layout, and how values of the type move to and from bytes.
//
// A codec is immutable once constructed and safe to share across goroutines.
// Container codecs own their element codecs, forming a tree that mirrors the
// type structure.
type Codec interface {
	// Name returns the canonical textual form of the type, the exact string
	// hashed into function selectors (e.g. "uint256", "(address,bytes)[]").
	Name() string

	// IsDynamic reports whether the type moves to its container's tail
	// region behind a head offset slot.
	IsDynamic() bool

	// StaticSize returns the number of bytes the type occupies in its
	// container's head region: 32 for dynamic types (the offset slot),
	// the full inline encoding size otherwise.
	StaticSize() int

	// EncodeFrame emits the standalone representation of value.
	EncodeFrame(value Value) ([]byte, error)

	// DecodeFrame interprets data starting at offset. Offsets written inside
	// the frame are relative to data[offset], not to the outermost message.
	DecodeFrame(data []byte, offset int) (Value, error)
}

// Encode encodes value as a standalone frame of the codec's type.
func Encode(codec Codec, value Value) ([]byte, error) {
	return codec.EncodeFrame(value)
}

// Decode interprets data as a standalone frame of the codec's type.
func Decode(codec Codec, data []byte) (Value, error) {
	return codec.DecodeFrame(data, 0)
}
