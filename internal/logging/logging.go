// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel overrides the log level when set (trace, debug, info, warn,
// error).
const EnvLogLevel = "DISPLOG_LOGLEVEL"

// Setup configures the global logger to write human-readable output to
// stderr. Verbose lowers the threshold to debug; diagnostics stay out of
// stdout so formatted reports remain clean.
func Setup(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		if parsed, err := zerolog.ParseLevel(lvl); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})
}
