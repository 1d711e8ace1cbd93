package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andyle182810/apicheck/middleware"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newEcho(logger zerolog.Logger, mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.Use(mw...)

	e.GET("/ok", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"request_id": middleware.GetRequestID(c),
			"api_key":    middleware.GetAPIKey(c),
		})
	})
	e.GET("/bad", func(_ *echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing password")
	})
	e.GET("/boom", func(_ *echo.Context) error {
		return errBoom
	})

	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	e := newEcho(zerolog.Nop(), middleware.RequestID())

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	generated := rec.Header().Get(middleware.HeaderXRequestID)
	require.NotEmpty(t, generated)
	require.Equal(t, generated, decode(t, rec)["request_id"])
}

func TestRequestID_EchoesCallerValue(t *testing.T) {
	t.Parallel()

	e := newEcho(zerolog.Nop(), middleware.RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderXRequestID, "trace-42")

	rec := serve(e, req)

	require.Equal(t, "trace-42", rec.Header().Get(middleware.HeaderXRequestID))
	require.Equal(t, "trace-42", decode(t, rec)["request_id"])
}

func TestRequestIDWithConfig_CustomGeneratorAndSkipper(t *testing.T) {
	t.Parallel()

	e := newEcho(zerolog.Nop(), middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Skipper:   nil,
		Generator: func() string { return "fixed" },
	}))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, "fixed", rec.Header().Get(middleware.HeaderXRequestID))

	skipped := newEcho(zerolog.Nop(), middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Skipper:   func(_ *echo.Context) bool { return true },
		Generator: nil,
	}))

	rec = serve(skipped, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Empty(t, rec.Header().Get(middleware.HeaderXRequestID))
}

func TestRequireAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "missing", key: "reqres-free-v1", header: "", wantStatus: http.StatusUnauthorized, wantError: middleware.MessageMissingAPIKey},
		{name: "wrong", key: "reqres-free-v1", header: "nope", wantStatus: http.StatusUnauthorized, wantError: middleware.MessageInvalidAPIKey},
		{name: "match", key: "reqres-free-v1", header: "reqres-free-v1", wantStatus: http.StatusOK, wantError: ""},
		{name: "disabled", key: "", header: "", wantStatus: http.StatusOK, wantError: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEcho(zerolog.Nop(), middleware.RequireAPIKey(tt.key))

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}

			rec := serve(e, req)
			require.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)
			if tt.wantError != "" {
				require.Equal(t, tt.wantError, body["error"])

				return
			}

			require.Equal(t, tt.header, body["api_key"])
		})
	}
}

func TestErrorHandler_HTTPErrorBody(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	e := newEcho(zerolog.New(&logs))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/bad", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing password", decode(t, rec)["error"])
	require.Contains(t, logs.String(), `"status_code":400`)
	require.Contains(t, logs.String(), `"level":"warn"`)
}

func TestErrorHandler_UnhandledError(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	e := newEcho(zerolog.New(&logs))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, http.StatusText(http.StatusInternalServerError), decode(t, rec)["error"])
	require.Contains(t, logs.String(), `"level":"error"`)
	require.Contains(t, logs.String(), "boom")
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	t.Parallel()

	e := newEcho(zerolog.Nop())

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotEmpty(t, decode(t, rec)["error"])
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	logger := zerolog.New(&logs)
	e := newEcho(logger, middleware.RequestID(), middleware.RequestLogger(logger, func(_ *echo.Context) map[string]any {
		return map[string]any{"component": "stub"}
	}))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderXRequestID, "log-me")
	serve(e, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.InDelta(t, float64(http.StatusOK), entry["status"], 0)
	require.Equal(t, "log-me", entry["request_id"])
	require.Equal(t, "stub", entry["component"])
	require.Equal(t, "GET", entry["method"])
	require.NotContains(t, entry, "key_accepted")
}

func TestRequestLogger_MarksAcceptedKey(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	logger := zerolog.New(&logs)
	e := newEcho(logger, middleware.RequestLogger(logger), middleware.RequireAPIKey("reqres-free-v1"))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderXAPIKey, "reqres-free-v1")
	serve(e, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	require.Equal(t, true, entry["key_accepted"])
	require.NotContains(t, logs.String(), `"reqres-free-v1"`)
}
