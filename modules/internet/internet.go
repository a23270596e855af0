// Package internet provides the "internet" capability: simple HTTP requests.
package internet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/object"
)

const (
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBodySize limits how much of a response body is read.
	DefaultMaxBodySize = 10 << 20
)

type Option func(*client)

// WithClient overrides the HTTP client used for requests.
func WithClient(c *http.Client) Option {
	return func(cl *client) { cl.http = c }
}

func WithTimeout(d time.Duration) Option {
	return func(cl *client) { cl.http = &http.Client{Timeout: d} }
}

func WithMaxBodySize(n int64) Option {
	return func(cl *client) { cl.maxBody = n }
}

type client struct {
	http    *http.Client
	maxBody int64
}

func (c *client) do(ctx context.Context, name, method, url, contentType, body string) (object.Object, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidArgument, err, "%s(): invalid request: %s", name, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.NativeFailure, err, "%s(%q) failed: %s", name, url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, errors.Wrap(errors.NativeFailure, err, "%s(%q): reading body: %s", name, url, err)
	}
	if resp.StatusCode >= 400 {
		return nil, errors.New(errors.NativeFailure, "%s(%q) returned %s", name, url, resp.Status).
			WithHint(fmt.Sprintf("response body: %s", truncate(string(data), 200)))
	}
	return object.NewString(string(data)), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func (c *client) Get(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.Require("http_get", 1, args); err != nil {
		return nil, err
	}
	url, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	return c.do(ctx, "http_get", http.MethodGet, url, "", "")
}

func (c *client) Post(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("http_post", 2, 3, args); err != nil {
		return nil, err
	}
	url, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	body, err := object.AsString(args[1])
	if err != nil {
		return nil, err
	}
	contentType := "text/plain; charset=utf-8"
	if len(args) == 3 {
		if contentType, err = object.AsString(args[2]); err != nil {
			return nil, err
		}
	}
	return c.do(ctx, "http_post", http.MethodPost, url, contentType, body)
}

func Module(opts ...Option) *object.Module {
	c := &client{
		http:    &http.Client{Timeout: DefaultTimeout},
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return object.NewBuiltinsModule("internet", map[string]object.Object{
		"http_get":  object.NewBuiltin("http_get", c.Get),
		"http_post": object.NewBuiltin("http_post", c.Post),
	})
}
