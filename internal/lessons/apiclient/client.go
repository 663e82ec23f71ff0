// Package apiclient is a Swift-style networking layer whose transport is a
// mock backend. Every call answers with a rop.Result instead of an error.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/ib-77/swiftbridge/internal/logging"
	"github.com/ib-77/swiftbridge/pkg/rop"
	"github.com/ib-77/swiftbridge/pkg/rop/chain"
)

const DefaultBaseURL = "https://api.example.com"

// Error is the class of every failure produced by the client.
var Error = errs.Class("apiclient")

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type Option func(*Client)

// WithToken adds an Authorization header to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.Headers["Authorization"] = "Bearer " + token
		}
	}
}

type Client struct {
	BaseURL string
	Headers map[string]string

	backend *backend
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: baseURL,
		Headers: map[string]string{"Content-Type": "application/json"},
		backend: newBackend(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BuildURL(endpoint string) string {
	return fmt.Sprintf("%s/%s", c.BaseURL, endpoint)
}

// LastRequest reports what the backend received most recently.
func (c *Client) LastRequest() Request {
	return c.backend.lastRequest()
}

func (c *Client) headers() map[string]string {
	h := make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		h[k] = v
	}
	return h
}

// do sends one request and yields the response body for 2xx statuses.
func (c *Client) do(ctx context.Context, method, endpoint string, body any) rop.Result[[]byte] {
	if err := ctx.Err(); err != nil {
		return rop.Cancel[[]byte](err)
	}

	var raw []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return rop.Fail[[]byte](Error.New("encode %s body: %v", method, err))
		}
		raw = encoded
	}

	req := Request{Method: method, URL: c.BuildURL(endpoint), Headers: c.headers(), Body: raw}
	logging.FromContext(ctx).Debug("request",
		logging.String("method", method), logging.String("url", req.URL))

	status, payload := c.backend.serve(req, endpoint)
	if status >= http.StatusBadRequest {
		var reason struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(payload, &reason)
		return rop.Fail[[]byte](Error.New("%s %s: %d %s", method, endpoint, status, reason.Error))
	}
	return rop.Success(payload)
}

func decode[T any](_ context.Context, payload []byte) (T, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, Error.Wrap(err)
	}
	return v, nil
}

func (c *Client) Get(ctx context.Context, endpoint string) rop.Result[map[string]any] {
	return chain.ThenTry(chain.Start(ctx, c.do(ctx, http.MethodGet, endpoint, nil)),
		decode[map[string]any]).Result()
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) rop.Result[map[string]any] {
	return chain.ThenTry(chain.Start(ctx, c.do(ctx, http.MethodPost, endpoint, body)),
		decode[map[string]any]).Result()
}

// Delete reports true once the resource is gone.
func (c *Client) Delete(ctx context.Context, endpoint string) rop.Result[bool] {
	return chain.Map(chain.Start(ctx, c.do(ctx, http.MethodDelete, endpoint, nil)),
		func(context.Context, []byte) bool { return true }).Result()
}

// GetUsers parses the users listing into User values.
func (c *Client) GetUsers(ctx context.Context) rop.Result[[]User] {
	type listing struct {
		Users []User `json:"users"`
	}

	parsed := chain.ThenTry(chain.Start(ctx, c.do(ctx, http.MethodGet, "users", nil)), decode[listing])
	return chain.Map(parsed, func(_ context.Context, l listing) []User { return l.Users }).Result()
}

func (c *Client) GetUser(ctx context.Context, id int) rop.Result[User] {
	return chain.ThenTry(chain.Start(ctx, c.do(ctx, http.MethodGet, "users/"+strconv.Itoa(id), nil)),
		decode[User]).Result()
}
