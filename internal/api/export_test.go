package api

import "context"

// ExportDo exposes the request path to black-box tests.
func ExportDo(c *Client, ctx context.Context, method, path string) ([]byte, error) {
	return c.do(ctx, method, path, nil, nil)
}
