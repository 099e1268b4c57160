package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/quizdeck/admin-core/internal/auth"
	"github.com/quizdeck/admin-core/internal/config"
)

// Client is the single gateway to the backend API. One HTTP request per
// call, no retry beyond the single fallback hop, no caching.
type Client struct {
	base     string
	fallback string
	session  *auth.Session
	http     *http.Client
}

// RequestOptions carries extra headers for a single call.
type RequestOptions struct {
	Header http.Header
}

// NewClient builds a client for the given backend base URL. fallback may be
// empty; when set it is tried on network failure and on 404 from the
// primary, the way the dev setup falls back to the LAN backend when the
// proxy is not active. session may be nil for unauthenticated use.
//
// No timeout is configured on the underlying http.Client; callers bound
// requests through ctx if they need to.
func NewClient(base, fallback string, session *auth.Session) *Client {
	return &Client{
		base:     base,
		fallback: fallback,
		session:  session,
		http:     &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, opts *RequestOptions) ([]byte, error) {
	log := config.WithContext(ctx)

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}

	res, err := c.send(ctx, method, c.base+path, body, opts)
	if err == nil && res.StatusCode == http.StatusNotFound && c.fallback != "" && c.fallback != c.base {
		res2, err2 := c.send(ctx, method, c.fallback+path, body, opts)
		if err2 == nil {
			res.Body.Close()
			res = res2
		}
	} else if err != nil && c.fallback != "" && c.fallback != c.base {
		log.WithError(err).Debugf("Primary backend unreachable, trying fallback for %s %s", method, path)
		res, err = c.send(ctx, method, c.fallback+path, body, opts)
	}
	if err != nil {
		return nil, err
	}

	return handleResponse(res)
}

func (c *Client) send(ctx context.Context, method, url string, body []byte, opts *RequestOptions) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.session != nil {
		if token, err := c.session.Token(); err == nil {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if opts != nil {
		for k, values := range opts.Header {
			for _, v := range values {
				req.Header.Set(k, v)
			}
		}
	}

	return c.http.Do(req)
}
