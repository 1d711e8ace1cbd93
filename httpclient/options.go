package httpclient

import (
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout    = 5 * time.Second
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderXRequestID  = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is
// overwritten by the client timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDefaultHeaders adds headers merged under the caller's headers on every
// request. Keys are compared case-insensitively.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.defaultHeaders[http.CanonicalHeaderKey(k)] = v
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug dumps every request and response through the client logger.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// WithRequestMiddleware appends stages that run after the default header merge.
func WithRequestMiddleware(mw ...RequestMiddleware) Option {
	return func(c *Client) {
		c.extraRequest = append(c.extraRequest, mw...)
	}
}

// WithResponseMiddleware appends stages that run after the error logger.
func WithResponseMiddleware(mw ...ResponseMiddleware) Option {
	return func(c *Client) {
		c.extraResponse = append(c.extraResponse, mw...)
	}
}

type RequestOption func(*Request)

func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}

		r.Headers[key] = value
	}
}

func WithHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(headers))
		}

		maps.Copy(r.Headers, headers)
	}
}

func WithQuery(key, value string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}

		r.Query[key] = value
	}
}

func WithQueryParams(params map[string]string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string, len(params))
		}

		maps.Copy(r.Query, params)
	}
}

func WithBody(body any) RequestOption {
	return func(r *Request) {
		r.Body = body
	}
}

// WithRequestTimeout bounds a single request; it cannot extend the client
// timeout.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(r *Request) {
		r.Timeout = timeout
	}
}

func WithRequestID(requestID string) RequestOption {
	return WithHeader(HeaderXRequestID, requestID)
}
