package api

import (
	"context"
	"encoding/json"
	"net/http"
)

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// SignIn exchanges credentials for a bearer token.
func (c *Client) SignIn(ctx context.Context, payload SignInRequest, opts *RequestOptions) (*SignInResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/auth/signin", payload, opts)
	if err != nil {
		return nil, err
	}
	var res SignInResponse
	if err := json.Unmarshal(body, &res); err != nil {
		// Successful but non-JSON answer; surface the raw text.
		return &SignInResponse{Message: string(body)}, nil
	}
	return &res, nil
}
