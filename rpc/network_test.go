package rpc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type scriptedChannel struct {
	lastReq *Request
	result  json.RawMessage
	errObj  *ErrorObject
}

func (c *scriptedChannel) Fire(ctx context.Context, req *Request) (*Response, error) {
	c.lastReq = req
	return &Response{Version: Version, ID: req.ID, Result: c.result, Error: c.errObj}, nil
}

func TestNetworkCall(t *testing.T) {
	channel := &scriptedChannel{
		result: json.RawMessage(`"0x0000000000000000000000000000000000000000000000000000000000000001"`),
	}
	network := NewNetwork(channel)

	to := common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	data, err := network.Call(context.Background(), to, []byte{0x70, 0xa0, 0x82, 0x31})
	require.NoError(t, err)
	require.Len(t, data, 32)
	require.Equal(t, byte(1), data[31])

	require.Equal(t, "eth_call", channel.lastReq.Method)
	require.Len(t, channel.lastReq.Params, 2)
	require.Equal(t, "latest", channel.lastReq.Params[1])

	params, ok := channel.lastReq.Params[0].(callParams)
	require.True(t, ok)
	require.Equal(t, to.Hex(), params.To)
	require.Equal(t, "0x70a08231", params.Data)
}

func TestNetworkCallError(t *testing.T) {
	channel := &scriptedChannel{
		errObj: &ErrorObject{Code: 3, Message: "execution reverted"},
	}
	network := NewNetwork(channel)

	_, err := network.Call(context.Background(), common.Address{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "execution reverted")
}

func TestNetworkBlockNumber(t *testing.T) {
	channel := &scriptedChannel{result: json.RawMessage(`"0x1b4"`)}
	network := NewNetwork(channel)

	number, err := network.BlockNumber(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 0x1b4, number)
	require.Equal(t, "eth_blockNumber", channel.lastReq.Method)
}
