package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v5"
)

const (
	MessageMissingAPIKey = "Missing API key"
	MessageInvalidAPIKey = "Invalid API key"
)

// RequireAPIKey rejects requests whose X-Api-Key header does not carry key
// with 401 and a {"error": "..."} body. An empty key disables the check.
func RequireAPIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx *echo.Context) error {
			if key == "" {
				return next(ctx)
			}

			got := ctx.Request().Header.Get(HeaderXAPIKey)

			switch {
			case got == "":
				return ctx.JSON(http.StatusUnauthorized, map[string]string{"error": MessageMissingAPIKey})
			case subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1:
				return ctx.JSON(http.StatusUnauthorized, map[string]string{"error": MessageInvalidAPIKey})
			}

			ctx.Set(ContextKeyAPIKey, got)

			return next(ctx)
		}
	}
}
