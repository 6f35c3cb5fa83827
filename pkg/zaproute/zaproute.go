// Package zaproute provides page routing for UIs that re-run the whole page on
// every interaction, plus a small HTML host to run such pages in a browser.
//
// The router itself lives in the router package; this package wires up the
// shared logging the router and host write to.
package zaproute

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/zaproute/pkg/zaproute/constants"
	"github.com/BrandonKowalski/zaproute/pkg/zaproute/internal"
)

// Options configures logging for the router and the web host.
type Options struct {
	LogPath     string // Full path for a log file including filename (creates parent directories)
	LogLevel    string // Application log level: debug, info, warn or error
	Diagnostics bool   // Log router and host internals at debug level
}

// Init configures logging. Call it before creating routers or servers.
// ZAPROUTE_LOG_LEVEL overrides Options.LogLevel, and development mode
// (ENVIRONMENT=DEV) turns on diagnostics.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)

	if options.Diagnostics || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(max(internal.ParseLevel(level), slog.LevelWarn))
	}
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// GetInternalLogger returns the logger the router and host write to.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
