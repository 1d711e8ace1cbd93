package httpclient

import (
	"encoding/json"
	"maps"
	"net/http"

	"github.com/rs/zerolog"
)

// RequestMiddleware transforms an outgoing request. Stages run in
// registration order; an error aborts the call before anything is sent.
type RequestMiddleware func(req *Request) error

// ResponseMiddleware observes or transforms the outcome of a call. resp is nil
// when no response was received. The returned error replaces err for the next
// stage and, finally, for the caller.
type ResponseMiddleware func(resp *Response, err error) error

// MergeHeaders puts defaults under the request's own headers: a key supplied
// by the caller is never overwritten.
func MergeHeaders(defaults map[string]string) RequestMiddleware {
	canonical := make(map[string]string, len(defaults))
	for k, v := range defaults {
		canonical[http.CanonicalHeaderKey(k)] = v
	}

	return func(req *Request) error {
		merged := make(map[string]string, len(canonical)+len(req.Headers))
		maps.Copy(merged, canonical)

		for k, v := range req.Headers {
			merged[http.CanonicalHeaderKey(k)] = v
		}

		req.Headers = merged

		return nil
	}
}

// LogErrorResponses logs calls that failed with a server response and hands
// the original error back unchanged. Transport failures pass through without
// a log line.
func LogErrorResponses(logger zerolog.Logger) ResponseMiddleware {
	return func(_ *Response, err error) error {
		statusErr, ok := IsStatusError(err)
		if !ok {
			return err
		}

		event := logger.Error().
			Int("status", statusErr.StatusCode).
			Str("url", statusErr.URL).
			Str("method", statusErr.Method).
			Str("request_id", statusErr.RequestID)

		if json.Valid(statusErr.Body) {
			event = event.RawJSON("data", statusErr.Body)
		} else {
			event = event.Str("data", string(statusErr.Body))
		}

		event.Msg("HTTP Error")

		return err
	}
}
