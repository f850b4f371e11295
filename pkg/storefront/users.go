package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Register creates a user account from values.
func (c *Client) Register(ctx context.Context, values Fields) error {
	return c.do(ctx, request{
		op:     OpRegister,
		method: http.MethodPost,
		path:   "/users",
		body:   values,
	}, nil)
}

// Login authenticates and stores the returned token and admin flag in the
// session.
//
// Unless CommitSessionOnSuccess is set, the session is written as soon as the
// reply decodes, before the status is checked, so a failed login still
// replaces the session contents.
func (c *Client) Login(ctx context.Context, email, password string) error {
	resp, err := c.send(ctx, request{
		op:     OpLogin,
		method: http.MethodPost,
		path:   "/login",
		body:   Credentials{Email: email, Password: password},
	})
	if err != nil {
		return newRequestError(OpLogin, 0, err)
	}

	var body LoginResponse
	if err := json.Unmarshal(resp.body, &body); err != nil {
		return newRequestError(OpLogin, resp.status, fmt.Errorf("decode response: %w", err))
	}

	if c.commitSessionOnSuccess {
		if !resp.ok() {
			return newRequestError(OpLogin, resp.status, nil)
		}
		c.session.LogIn(body.Token, body.IsAdmin)
		return nil
	}

	c.session.LogIn(body.Token, body.IsAdmin)
	if !resp.ok() {
		c.logger.Printf("[storefront] login failed with status %d after session was updated", resp.status)
		return newRequestError(OpLogin, resp.status, nil)
	}
	return nil
}
