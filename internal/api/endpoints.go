package api

import (
	"context"
	"net/http"

	"boxroom/internal/model"
)

// The backend contract. Paths and shapes are fixed; everything here is a
// thin typed veneer over Call.

// LoginResult is the useful part of a successful login body. The server may
// return extra fields; only the token matters locally.
type LoginResult struct {
	Token string `json:"token"`
}

// MeResult is the session-check body. Authenticated is the only source of
// truth for auth state; a stored token proves nothing by itself.
type MeResult struct {
	Authenticated bool        `json:"authenticated"`
	User          *model.User `json:"user,omitempty"`
}

// CustomersResult is the customer listing body.
type CustomersResult struct {
	Count     int              `json:"count"`
	Customers []model.Customer `json:"customers"`
}

// OriginsResult is the valid package-origin listing body.
type OriginsResult struct {
	Origins []string `json:"origins"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sendBulkRequest struct {
	Items []model.SubmissionItem `json:"items"`
}

// Login posts credentials (in the body, never the query string). The decoded
// result is only meaningful when resp.OK.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, Response, error) {
	resp, err := c.Call(ctx, http.MethodPost, "/api/login", loginRequest{Username: username, Password: password})
	if err != nil {
		return LoginResult{}, Response{}, err
	}
	var out LoginResult
	if resp.OK {
		_ = resp.Decode(&out)
	}
	return out, resp, nil
}

// Me runs the session check.
func (c *Client) Me(ctx context.Context) (MeResult, Response, error) {
	resp, err := c.Call(ctx, http.MethodGet, "/api/me", nil)
	if err != nil {
		return MeResult{}, Response{}, err
	}
	var out MeResult
	if resp.OK {
		_ = resp.Decode(&out)
	}
	return out, resp, nil
}

// Customers fetches the customer listing.
func (c *Client) Customers(ctx context.Context) (CustomersResult, Response, error) {
	resp, err := c.Call(ctx, http.MethodGet, "/api/customers", nil)
	if err != nil {
		return CustomersResult{}, Response{}, err
	}
	var out CustomersResult
	if resp.OK {
		if err := resp.Decode(&out); err != nil {
			return CustomersResult{}, resp, &ServerError{Status: resp.Status, Payload: "unparseable customer listing"}
		}
	}
	return out, resp, nil
}

// Origins fetches the valid package-origin values.
func (c *Client) Origins(ctx context.Context) (OriginsResult, Response, error) {
	resp, err := c.Call(ctx, http.MethodGet, "/api/origins", nil)
	if err != nil {
		return OriginsResult{}, Response{}, err
	}
	var out OriginsResult
	if resp.OK {
		if err := resp.Decode(&out); err != nil {
			return OriginsResult{}, resp, &ServerError{Status: resp.Status, Payload: "unparseable origin listing"}
		}
	}
	return out, resp, nil
}

// SendBulk posts the validated batch. The server logs rather than delivers;
// an OK response means "accepted", nothing more.
func (c *Client) SendBulk(ctx context.Context, items []model.SubmissionItem) (Response, error) {
	return c.Call(ctx, http.MethodPost, "/api/send-bulk", sendBulkRequest{Items: items})
}
