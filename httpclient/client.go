package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/andyle182810/apicheck/config"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client is built once and shared. It keeps no per-request state, so
// concurrent calls need no locking.
type Client struct {
	baseURL        string
	timeout        time.Duration
	httpClient     *http.Client
	defaultHeaders map[string]string
	logger         zerolog.Logger
	debug          bool

	extraRequest  []RequestMiddleware
	extraResponse []ResponseMiddleware

	requestStages  []RequestMiddleware
	responseStages []ResponseMiddleware
	resty          *resty.Client
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		timeout:        DefaultTimeout,
		httpClient:     nil,
		defaultHeaders: make(map[string]string),
		logger:         log.Logger,
		debug:          false,
		extraRequest:   nil,
		extraResponse:  nil,
		requestStages:  nil,
		responseStages: nil,
		resty:          nil,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.requestStages = append([]RequestMiddleware{MergeHeaders(c.defaultHeaders)}, c.extraRequest...)
	c.responseStages = append([]ResponseMiddleware{LogErrorResponses(c.logger)}, c.extraResponse...)
	c.resty = c.newResty()

	return c
}

// NewFromConfig builds a client from the configuration provider's output.
// Options given here are applied after the configuration.
func NewFromConfig(cfg *config.Config, opts ...Option) *Client {
	base := []Option{
		WithTimeout(cfg.Timeout()),
		WithDefaultHeaders(cfg.DefaultHeaders()),
		WithDebug(cfg.LogHTTP()),
	}

	return New(cfg.BaseURL, append(base, opts...)...)
}

func (c *Client) newResty() *resty.Client {
	var rc *resty.Client
	if c.httpClient != nil {
		rc = resty.NewWithClient(c.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(c.baseURL).
		SetRetryCount(0).
		SetLogger(newRestyLogger(c.logger)).
		SetDebug(c.debug)

	if c.timeout > 0 {
		rc.SetTimeout(c.timeout)
	}

	return rc
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// CloseIdleConnections releases the keep-alive connections of the underlying
// transport. The client stays usable and dials again on the next call.
func (c *Client) CloseIdleConnections() {
	c.resty.GetClient().CloseIdleConnections()
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, path, nil, opts...))
}

func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodHead, path, nil, opts...))
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodDelete, path, nil, opts...))
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPost, path, body, opts...))
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPut, path, body, opts...))
}

func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodPatch, path, body, opts...))
}

// NewRequest builds a request descriptor and applies opts to it.
func NewRequest(method, path string, body any, opts ...RequestOption) *Request {
	req := &Request{
		Method:  method,
		Path:    path,
		Body:    body,
		Headers: nil,
		Query:   nil,
		Timeout: 0,
	}

	for _, opt := range opts {
		opt(req)
	}

	return req
}

// Do runs req through the request stages, sends it, and runs the outcome
// through the response stages. On a non-2xx status both the response and a
// *StatusError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Method == "" {
		return nil, fmt.Errorf("%w: method is required", ErrInvalidRequest)
	}

	for _, stage := range c.requestStages {
		if err := stage(req); err != nil {
			return nil, err
		}
	}

	resp, err := c.send(ctx, req)

	for _, stage := range c.responseStages {
		err = stage(resp, err)
	}

	return resp, err
}

func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)

		defer cancel()
	}

	requestID := headerValue(req.Headers, HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	restyReq := c.resty.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		SetHeader(HeaderXRequestID, requestID)

	if len(req.Query) > 0 {
		restyReq.SetQueryParams(req.Query)
	}

	if req.Body != nil {
		body, err := encodeBody(req.Body)
		if err != nil {
			return nil, err
		}

		restyReq.SetBody(body)
	}

	restyResp, err := restyReq.Execute(req.Method, req.Path)
	if err != nil {
		return nil, transportError(err)
	}

	resp := &Response{
		StatusCode: restyResp.StatusCode(),
		Header:     restyResp.Header(),
		Body:       restyResp.Body(),
		Method:     req.Method,
		URL:        resolvedURL(restyResp, c.baseURL+req.Path),
		RequestID:  requestID,
		Duration:   restyResp.Time(),
	}

	if !resp.IsSuccess() {
		return resp, &StatusError{
			StatusCode: resp.StatusCode,
			Method:     resp.Method,
			URL:        resp.URL,
			Body:       resp.Body,
			RequestID:  requestID,
		}
	}

	return resp, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	return encoded, nil
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w: %w", ErrRequestFailed, ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

func resolvedURL(resp *resty.Response, fallback string) string {
	if resp.Request != nil && resp.Request.RawRequest != nil && resp.Request.RawRequest.URL != nil {
		return resp.Request.RawRequest.URL.String()
	}

	return fallback
}

func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}

	return ""
}
