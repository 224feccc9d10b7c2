package rpc

import (
	"context"
)

// OneshotChannel fires a single request and waits for its response.
//
// Implementations are safe for concurrent use; the round-robin extension
// relies on it.
type OneshotChannel interface {
	Fire(ctx context.Context, req *Request) (*Response, error)
}
