package abi

import (
	"github.com/ethereum/go-ethereum/common"
)

// AddressCodec encodes the 20 address bytes into the low end of a word.
type AddressCodec struct{}

func (AddressCodec) Name() string {
	return "address"
}

func (AddressCodec) IsDynamic() bool {
	return false
}

func (AddressCodec) StaticSize() int {
	return WordSize
}

func (AddressCodec) EncodeFrame(value Value) ([]byte, error) {
	address, err := value.AsAddress()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, WordSize)
	copy(buf[WordSize-common.AddressLength:], address[:])
	return buf, nil
}

func (AddressCodec) DecodeFrame(data []byte, offset int) (Value, error) {
	w, err := word(data, offset)
	if err != nil {
		return Value{}, err
	}
	return NewAddressFromBytes(common.BytesToAddress(w[WordSize-common.AddressLength:])), nil
}
