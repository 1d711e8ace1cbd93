package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

type RequestIDConfig struct {
	Skipper   middleware.Skipper
	Generator func() string
}

func DefaultRequestIDConfig() RequestIDConfig {
	return RequestIDConfig{
		Skipper:   middleware.DefaultSkipper,
		Generator: uuid.NewString,
	}
}

// RequestID echoes the caller's X-Request-ID back on the response, or
// generates one when the caller sent none. Any non-blank value is accepted.
func RequestID() echo.MiddlewareFunc {
	return RequestIDWithConfig(DefaultRequestIDConfig())
}

func RequestIDWithConfig(config RequestIDConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	if config.Generator == nil {
		config.Generator = uuid.NewString
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx *echo.Context) error {
			if config.Skipper(ctx) {
				return next(ctx)
			}

			req := ctx.Request()

			rid := strings.TrimSpace(req.Header.Get(HeaderXRequestID))
			if rid == "" {
				rid = config.Generator()
				req.Header.Set(HeaderXRequestID, rid)
			}

			ctx.Response().Header().Set(HeaderXRequestID, rid)
			ctx.Set(ContextKeyRequestID, rid)

			return next(ctx)
		}
	}
}
