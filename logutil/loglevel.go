package logutil

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var httpLogFlagPattern = regexp.MustCompile(`(?i)^(1|true|on|debug)$`)

func ParseZerologLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ParseHTTPLogFlag reports whether a LOG_HTTP style value turns on wire logging.
func ParseHTTPLogFlag(value string) bool {
	return httpLogFlagPattern.MatchString(strings.TrimSpace(value))
}
