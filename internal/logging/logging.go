// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog. format is "console" (human-readable) or "json";
// level is any zerolog level name and falls back to info when unrecognised.
func Setup(format, level string) {
	SetupWriter(os.Stdout, format, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(out io.Writer, format, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	w := out
	if format != "json" {
		w = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = out
			cw.TimeFormat = time.RFC3339
			cw.NoColor = true
		})
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
