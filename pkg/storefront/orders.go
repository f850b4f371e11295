package storefront

import (
	"context"
	"net/http"
)

// CreateOrder posts values with a millisecond timestamp taken at call time.
// A caller-supplied "timestamp" key is overwritten.
func (c *Client) CreateOrder(ctx context.Context, values Fields) error {
	payload := values.clone()
	payload["timestamp"] = c.nowFunc().UnixMilli()

	return c.do(ctx, request{
		op:         OpCreateOrder,
		method:     http.MethodPost,
		path:       "/orders",
		body:       payload,
		authorized: true,
	}, nil)
}

// GetOrders returns the orders visible to the current session.
func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	err := c.do(ctx, request{
		op:         OpGetOrders,
		method:     http.MethodGet,
		path:       "/orders",
		authorized: true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
