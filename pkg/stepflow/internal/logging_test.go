package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestInternalLoggerDefaultsToErrors(t *testing.T) {
	l := GetInternalLogger()
	assert.NotNil(t, l)
	assert.Same(t, l, GetInternalLogger())
	assert.Equal(t, slog.LevelError, internalLevelVar.Level())
}
