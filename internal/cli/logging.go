package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// newLogger builds the root logger. Console format is the default; json
// emits raw zerolog lines for log shippers.
func newLogger(cfg *Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(out).Level(parseLevel(cfg.LogLevel)).With().Timestamp().Logger()
}
