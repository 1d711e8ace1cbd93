package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Request describes a single call. Request middleware may rewrite it before
// it is sent.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
	Query   map[string]string
	Timeout time.Duration
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Method     string
	URL        string
	RequestID  string
	Duration   time.Duration
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

// Data decodes the body into an arbitrary JSON value. An empty body yields nil.
func (r *Response) Data() (any, error) {
	if len(r.Body) == 0 {
		return nil, nil //nolint:nilnil
	}

	var data any
	if err := r.JSON(&data); err != nil {
		return nil, err
	}

	return data, nil
}
