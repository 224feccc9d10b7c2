package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("rpc")

const defaultTimeout = 30 * time.Second

// HTTPChannel posts requests to a single JSON-RPC endpoint.
type HTTPChannel struct {
	endpoint string
	client   *http.Client
}

func NewHTTPChannel(endpoint string) *HTTPChannel {
	return &HTTPChannel{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

func (c *HTTPChannel) Endpoint() string {
	return c.endpoint
}

func (c *HTTPChannel) Fire(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Debugf("-> %s id=%d %s", req.Method, req.ID, c.endpoint)
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", httpResp.Status, c.endpoint)
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	log.Debugf("<- %s id=%d", req.Method, resp.ID)
	return &resp, nil
}
