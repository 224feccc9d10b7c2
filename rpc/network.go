package rpc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Network wraps the Ethereum JSON-RPC method surface the contract layer
// needs: hex-string coercions in, raw bytes out.
type Network struct {
	channel OneshotChannel
}

func NewNetwork(channel OneshotChannel) *Network {
	return &Network{channel: channel}
}

type callParams struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// Call performs eth_call against the latest block and returns the raw
// return data.
func (n *Network) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	req := NewRequest("eth_call", callParams{
		To:   to.Hex(),
		Data: hexutil.Encode(data),
	}, "latest")

	resp, err := n.channel.Fire(ctx, req)
	if err != nil {
		return nil, err
	}

	var result string
	if err := resp.UnmarshalResult(&result); err != nil {
		return nil, err
	}
	return hexutil.Decode(result)
}

// BlockNumber returns the number of the most recent block.
func (n *Network) BlockNumber(ctx context.Context) (uint64, error) {
	resp, err := n.channel.Fire(ctx, NewRequest("eth_blockNumber"))
	if err != nil {
		return 0, err
	}

	var number hexutil.Uint64
	if err := resp.UnmarshalResult(&number); err != nil {
		return 0, err
	}
	return uint64(number), nil
}

// ChainID returns the chain id the endpoint serves.
func (n *Network) ChainID(ctx context.Context) (uint64, error) {
	resp, err := n.channel.Fire(ctx, NewRequest("eth_chainId"))
	if err != nil {
		return 0, err
	}

	var id hexutil.Uint64
	if err := resp.UnmarshalResult(&id); err != nil {
		return 0, err
	}
	return uint64(id), nil
}
