package api

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) GeneralStats(ctx context.Context, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/admin/stats/general", nil, opts)
}

func (c *Client) TopQuizzes(ctx context.Context, opts *RequestOptions) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/stats/top-quizzes", nil, opts)
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

func (c *Client) CompletionRate(ctx context.Context, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/admin/stats/completion-rate", nil, opts)
}

func (c *Client) Traffic(ctx context.Context, opts *RequestOptions) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/admin/stats/traffic", nil, opts)
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}
