package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

// ErrorHandler answers every unhandled error with the {"error": "..."} body
// the demo API uses, and logs it.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(ectx *echo.Context, err error) {
		res, unwrapErr := echo.UnwrapResponse(ectx.Response())
		if unwrapErr == nil && res.Committed {
			return
		}

		code, message := statusOf(err)

		event := logger.Warn()
		if code >= http.StatusInternalServerError {
			event = logger.Error()
		}

		event.
			Err(err).
			Int("status_code", code).
			Str("path", ectx.Request().URL.Path).
			Str("method", ectx.Request().Method).
			Str("request_id", GetRequestID(ectx)).
			Msg("Request failed")

		if ectx.Request().Method == http.MethodHead {
			_ = ectx.NoContent(code)

			return
		}

		_ = ectx.JSON(code, map[string]string{"error": message})
	}
}

func statusOf(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		if message == "" {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, message
	}

	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		return coder.StatusCode(), http.StatusText(coder.StatusCode())
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
