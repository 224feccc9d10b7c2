package contracts

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	abi "github.com/heybit/go-abi"
	"github.com/heybit/go-abi/rpc"
)

// scriptedChannel answers every eth_call with a canned return payload and
// records the calldata it saw.
type scriptedChannel struct {
	returnData string
	calldata   string
}

func (c *scriptedChannel) Fire(ctx context.Context, req *rpc.Request) (*rpc.Response, error) {
	if req.Method != "eth_call" {
		return nil, fmt.Errorf("unexpected method %s", req.Method)
	}

	params, err := json.Marshal(req.Params[0])
	if err != nil {
		return nil, err
	}
	var call struct {
		To   string `json:"to"`
		Data string `json:"data"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, err
	}
	c.calldata = call.Data

	result, err := json.Marshal("0x" + c.returnData)
	if err != nil {
		return nil, err
	}
	return &rpc.Response{Version: rpc.Version, ID: req.ID, Result: result}, nil
}

func TestContractInvoke(t *testing.T) {
	// name() returns (string): "Tether USD"
	channel := &scriptedChannel{
		returnData: "0000000000000000000000000000000000000000000000000000000000000020" +
			"000000000000000000000000000000000000000000000000000000000000000a" +
			"5465746865722055534400000000000000000000000000000000000000000000",
	}

	contract, err := NewFromHex(rpc.NewNetwork(channel), "0xdAC17F958D2ee523a2206206994597C13D831ec7")
	require.NoError(t, err)

	fn, err := abi.NewFunction("name", nil, []string{"string"})
	require.NoError(t, err)

	results, err := contract.Invoke(context.Background(), fn)
	require.NoError(t, err)
	require.Len(t, results, 1)

	name, err := results[0].AsString()
	require.NoError(t, err)
	require.Equal(t, "Tether USD", name)

	selector := fn.Selector()
	require.Equal(t, "0x"+hex.EncodeToString(selector[:]), channel.calldata)
}

func TestContractInvokeEncodesArguments(t *testing.T) {
	channel := &scriptedChannel{
		returnData: "0000000000000000000000000000000000000000000000000000000000000001",
	}

	contract, err := NewFromHex(rpc.NewNetwork(channel), "0xdAC17F958D2ee523a2206206994597C13D831ec7")
	require.NoError(t, err)

	fn, err := abi.NewFunction("balanceOf", []string{"address"}, []string{"uint256"})
	require.NoError(t, err)

	owner, err := abi.NewAddress("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)

	results, err := contract.Invoke(context.Background(), fn, owner)
	require.NoError(t, err)

	balance, err := results[0].AsUint()
	require.NoError(t, err)
	require.EqualValues(t, 1, balance.Uint64())

	require.Equal(t,
		"0x70a082310000000000000000000000001111111111111111111111111111111111111111",
		channel.calldata,
	)
}

func TestNewFromHexRejectsBadAddress(t *testing.T) {
	_, err := NewFromHex(rpc.NewNetwork(&scriptedChannel{}), "0xdeadbeef")
	require.ErrorIs(t, err, abi.ErrInvalidData)
}
