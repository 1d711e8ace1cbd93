package middleware

import (
	"maps"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

type LogFieldExtractor func(*echo.Context) map[string]any

// RequestLogger writes one line per completed request. Requests that end in
// a returned error are left to the error handler.
func RequestLogger(log zerolog.Logger, extraLogFieldExtractor ...LogFieldExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx *echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				return err
			}

			res, err := echo.UnwrapResponse(ctx.Response())
			if err != nil {
				return err
			}

			fields := map[string]any{
				"method":  ctx.Request().Method,
				"uri":     ctx.Request().RequestURI,
				"status":  res.Status,
				"size":    res.Size,
				"latency": time.Since(start).String(),
				"remote":  ctx.RealIP(),
				"has_key": ctx.Request().Header.Get(HeaderXAPIKey) != "",
				"agent":   ctx.Request().UserAgent(),
			}

			if id := GetRequestID(ctx); id != "" {
				fields["request_id"] = id
			}

			if GetAPIKey(ctx) != "" {
				fields["key_accepted"] = true
			}

			for _, extractor := range extraLogFieldExtractor {
				maps.Copy(fields, extractor(ctx))
			}

			logRequest(log.With().Fields(fields).Logger(), res.Status)

			return nil
		}
	}
}

func logRequest(logger zerolog.Logger, status int) {
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error().Msg("The request has resulted in a server error")
	case status >= http.StatusBadRequest:
		logger.Warn().Msg("The request has resulted in a client error")
	default:
		logger.Info().Msg("The request has completed successfully")
	}
}
