// Package contracts binds deployed contract addresses to RPC channels so
// that FunctionSpec calls can be fired remotely.
package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	abi "github.com/heybit/go-abi"
	"github.com/heybit/go-abi/rpc"
)

// Contract is a deployed contract reachable over a network.
type Contract struct {
	network *rpc.Network
	address common.Address
}

func New(network *rpc.Network, address common.Address) *Contract {
	return &Contract{network: network, address: address}
}

// NewFromHex validates hexAddress with the same rules as abi.NewAddress.
func NewFromHex(network *rpc.Network, hexAddress string) (*Contract, error) {
	value, err := abi.NewAddress(hexAddress)
	if err != nil {
		return nil, err
	}
	address, err := value.AsAddress()
	if err != nil {
		return nil, err
	}
	return New(network, address), nil
}

func (c *Contract) Address() common.Address {
	return c.address
}

// Invoke encodes a call to fn, fires it through the contract's network, and
// decodes the return values.
func (c *Contract) Invoke(ctx context.Context, fn *abi.FunctionSpec, args ...abi.Value) ([]abi.Value, error) {
	calldata, err := fn.Encode(args)
	if err != nil {
		return nil, err
	}

	ret, err := c.network.Call(ctx, c.address, calldata)
	if err != nil {
		return nil, err
	}

	return fn.Decode(ret)
}
