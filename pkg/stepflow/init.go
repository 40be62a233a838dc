package stepflow

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/internal"
)

// Options configures logging for stepflow and the application using it.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level; STEPFLOW_LOG_LEVEL overrides it
	Debug    bool   // Log coordinator decisions (sequence changes, transitions, dropped steps)
}

// Init applies options. Call it before creating coordinators so they pick up
// the configured log destination.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
