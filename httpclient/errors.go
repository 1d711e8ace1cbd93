package httpclient

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed  = errors.New("httpclient: request failed")
	ErrTimeout        = errors.New("httpclient: request timed out")
	ErrStatus         = errors.New("httpclient: unexpected status")
	ErrDecodeResponse = errors.New("httpclient: failed to decode response")
	ErrEncodeBody     = errors.New("httpclient: failed to encode request body")
	ErrInvalidRequest = errors.New("httpclient: invalid request")
)

// StatusError is returned for every response outside the 2xx range. The
// response itself is returned alongside it.
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
	Body       []byte
	RequestID  string
}

func (e *StatusError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("httpclient: %s %s returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	}

	return fmt.Sprintf("httpclient: %s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return errors.Is(target, ErrStatus)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 for transport and
// client-side failures.
func StatusCode(err error) int {
	if statusErr, ok := IsStatusError(err); ok {
		return statusErr.StatusCode
	}

	return 0
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
