package abi

// BooleanCodec encodes bool as a word with the low byte set to 0 or 1, and
// decodes any word with a non-zero byte as true.
type BooleanCodec struct{}

func (BooleanCodec) Name() string {
	return "bool"
}

func (BooleanCodec) IsDynamic() bool {
	return false
}

func (BooleanCodec) StaticSize() int {
	return WordSize
}

func (BooleanCodec) EncodeFrame(value Value) ([]byte, error) {
	b, err := value.AsBool()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, WordSize)
	if b {
		buf[WordSize-1] = 1
	}
	return buf, nil
}

func (BooleanCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	w, err := word(data, offset)
	if err != nil {
		return Value{}, err
	}

	for _, b := range w {
		if b != 0 {
			return NewBool(true), nil
		}
	}
	return NewBool(false), nil
}
