package rpc

import (
	"context"
	"sync/atomic"
)

// RoundRobin rotates requests over several oneshot channels, spreading load
// across redundant endpoints.
type RoundRobin struct {
	channels []OneshotChannel
	cursor   atomic.Uint64
}

func NewRoundRobin(channels ...OneshotChannel) *RoundRobin {
	if len(channels) == 0 {
		panic("round robin needs at least one channel")
	}
	return &RoundRobin{channels: channels}
}

func (r *RoundRobin) Fire(ctx context.Context, req *Request) (*Response, error) {
	next := r.cursor.Add(1) - 1
	channel := r.channels[next%uint64(len(r.channels))]
	return channel.Fire(ctx, req)
}
