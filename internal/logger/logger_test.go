package logger

import (
	"bytes"
	"testing"

	"github.com/auto-dns/compose-hosts/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&config.LoggingConfig{Level: "DEBUG"}, &buf)

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Debug().Msg("listing containers")
	assert.Contains(t, buf.String(), "listing containers")
	assert.Contains(t, buf.String(), "compose_hosts")
}

func TestNewLogger_InvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&config.LoggingConfig{Level: "chatty"}, &buf)

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_EmptyLevelFallsBackToWarn(t *testing.T) {
	log := newLogger(&config.LoggingConfig{}, &bytes.Buffer{})
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}
