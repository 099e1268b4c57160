package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) Users(ctx context.Context, opts *RequestOptions) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, opts)
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

// UserActivity24h returns the last-24-hours user activity deltas.
func (c *Client) UserActivity24h(ctx context.Context, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/admin/users/activity-24h", nil, opts)
}

func (c *Client) UserGeneral(ctx context.Context, username string, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/admin/user-general?username="+url.QueryEscape(username), nil, opts)
}

func (c *Client) UserOpinions(ctx context.Context, username string, opts *RequestOptions) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/user-opinions?username="+url.QueryEscape(username), nil, opts)
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}
