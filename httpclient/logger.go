package httpclient

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// restyLogger routes resty's own output through zerolog. Debug dumps only
// exist when wire logging was requested, so they are written at info level.
type restyLogger struct {
	logger zerolog.Logger
}

func newRestyLogger(logger zerolog.Logger) *restyLogger {
	return &restyLogger{logger: logger.With().Str("component", "httpclient").Logger()}
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msg(trim(format, v))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msg(trim(format, v))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Info().Msg(trim(format, v))
}

func trim(format string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
