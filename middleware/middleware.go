package middleware

import (
	"github.com/labstack/echo/v5"
)

const (
	ContextKeyAPIKey    string = "apiKey"
	ContextKeyRequestID string = "requestID"
)

const (
	HeaderXAPIKey    = "X-Api-Key" //nolint:gosec
	HeaderXRequestID = "X-Request-ID"
)

func GetAPIKey(c *echo.Context) string {
	if apiKey, ok := c.Get(ContextKeyAPIKey).(string); ok {
		return apiKey
	}

	return ""
}

func GetRequestID(c *echo.Context) string {
	if requestID, ok := c.Get(ContextKeyRequestID).(string); ok {
		return requestID
	}

	return ""
}
