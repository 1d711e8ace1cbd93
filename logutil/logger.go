package logutil

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

func New(w io.Writer, format Format, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly} //nolint:exhaustruct
	}

	return zerolog.New(w).
		Level(ParseZerologLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Setup replaces the global logger and level used by packages that log through
// zerolog/log.
func Setup(w io.Writer, format Format, level string) {
	zerolog.SetGlobalLevel(ParseZerologLevel(level))
	log.Logger = New(w, format, level)
}
