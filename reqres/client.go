// Package reqres is the typed surface of the reqres.in demo API. Every call
// goes through a single httpclient.Client, so the default header merge and
// error logging apply uniformly.
package reqres

import (
	"context"
	"net/http"
	"strconv"

	"github.com/andyle182810/apicheck/config"
	"github.com/andyle182810/apicheck/httpclient"
)

// Result pairs the decoded body with the raw response. Response is set
// whenever the server answered, including non-2xx statuses.
type Result[T any] struct {
	Value    T
	Response *httpclient.Response
}

func (r *Result[T]) StatusCode() int {
	if r == nil || r.Response == nil {
		return 0
	}

	return r.Response.StatusCode
}

type Client struct {
	http *httpclient.Client
}

func New(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func NewFromConfig(cfg *config.Config, opts ...httpclient.Option) *Client {
	return New(httpclient.NewFromConfig(cfg, opts...))
}

func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// Close drops the idle connections of the underlying transport.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) ListUsers(ctx context.Context, page int, opts ...httpclient.RequestOption) (*Result[UserPage], error) {
	opts = append([]httpclient.RequestOption{httpclient.WithQuery("page", strconv.Itoa(page))}, opts...)

	return call[UserPage](ctx, c.http, httpclient.NewRequest(http.MethodGet, PathUsers, nil, opts...))
}

// ListUsersDelayed asks the server to hold the response for the given number
// of seconds.
func (c *Client) ListUsersDelayed(
	ctx context.Context,
	seconds int,
	opts ...httpclient.RequestOption,
) (*Result[UserPage], error) {
	opts = append([]httpclient.RequestOption{httpclient.WithQuery("delay", strconv.Itoa(seconds))}, opts...)

	return call[UserPage](ctx, c.http, httpclient.NewRequest(http.MethodGet, PathUsers, nil, opts...))
}

func (c *Client) GetUser(ctx context.Context, id int, opts ...httpclient.RequestOption) (*Result[SingleUser], error) {
	return call[SingleUser](ctx, c.http, httpclient.NewRequest(http.MethodGet, UserPath(id), nil, opts...))
}

func (c *Client) UpdateUser(
	ctx context.Context,
	id int,
	body UpdateUserRequest,
	opts ...httpclient.RequestOption,
) (*Result[UpdatedUser], error) {
	return call[UpdatedUser](ctx, c.http, httpclient.NewRequest(http.MethodPatch, UserPath(id), body, opts...))
}

func (c *Client) ReplaceUser(
	ctx context.Context,
	id int,
	body UpdateUserRequest,
	opts ...httpclient.RequestOption,
) (*Result[UpdatedUser], error) {
	return call[UpdatedUser](ctx, c.http, httpclient.NewRequest(http.MethodPut, UserPath(id), body, opts...))
}

func (c *Client) DeleteUser(ctx context.Context, id int, opts ...httpclient.RequestOption) (*Result[struct{}], error) {
	return call[struct{}](ctx, c.http, httpclient.NewRequest(http.MethodDelete, UserPath(id), nil, opts...))
}

func (c *Client) CreateUser(
	ctx context.Context,
	body CreateUserRequest,
	opts ...httpclient.RequestOption,
) (*Result[CreatedUser], error) {
	return call[CreatedUser](ctx, c.http, httpclient.NewRequest(http.MethodPost, PathUsers, body, opts...))
}

func (c *Client) Login(ctx context.Context, body LoginRequest, opts ...httpclient.RequestOption) (*Result[LoginResponse], error) {
	return call[LoginResponse](ctx, c.http, httpclient.NewRequest(http.MethodPost, PathLogin, body, opts...))
}

// Register uses the login body; only the fixed demo users succeed.
func (c *Client) Register(
	ctx context.Context,
	body LoginRequest,
	opts ...httpclient.RequestOption,
) (*Result[RegisterResponse], error) {
	return call[RegisterResponse](ctx, c.http, httpclient.NewRequest(http.MethodPost, PathRegister, body, opts...))
}

func (c *Client) ListResources(ctx context.Context, opts ...httpclient.RequestOption) (*Result[ResourcePage], error) {
	return call[ResourcePage](ctx, c.http, httpclient.NewRequest(http.MethodGet, PathResources, nil, opts...))
}

func (c *Client) GetResource(
	ctx context.Context,
	id int,
	opts ...httpclient.RequestOption,
) (*Result[SingleResource], error) {
	return call[SingleResource](
		ctx, c.http, httpclient.NewRequest(http.MethodGet, ResourcePath(id), nil, opts...),
	)
}

// call sends req and decodes a successful body. The returned Result is never
// nil, so callers can inspect the status of a rejected call.
func call[T any](ctx context.Context, hc *httpclient.Client, req *httpclient.Request) (*Result[T], error) {
	var result Result[T]

	resp, err := hc.Do(ctx, req)
	result.Response = resp

	if err != nil {
		return &result, err
	}

	if len(resp.Body) == 0 {
		return &result, nil
	}

	if err := resp.JSON(&result.Value); err != nil {
		return &result, err
	}

	return &result, nil
}

// DecodeError extracts the {"error": "..."} body of a rejected call. It
// returns an empty string when there is none.
func DecodeError(resp *httpclient.Response) string {
	if resp == nil || len(resp.Body) == 0 {
		return ""
	}

	var body ErrorBody
	if err := resp.JSON(&body); err != nil {
		return ""
	}

	return body.Error
}
