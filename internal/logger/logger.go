package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/auto-dns/compose-hosts/internal/config"
	"github.com/rs/zerolog"
)

// SetupLogger builds the console logger. Output goes to stderr so it never
// interleaves with the table on stdout.
func SetupLogger(cfg *config.LoggingConfig) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.LoggingConfig, out io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Str("service", "compose_hosts").
		Logger()
}
