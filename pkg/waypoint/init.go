// Package waypoint is a navigation coordinator for applications built from
// stacked and presented surfaces.
//
// The router subpackage does the work: it turns navigation requests (push,
// modal, popover, alert, root) into transitions on a host UI toolkit and
// closes them again. This package wires up the framework-wide pieces the
// routers share: logging, default animation, alert label locale and popover
// styling.
package waypoint

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BurntSushi/toml"
)

// Options configures the waypoint framework.
type Options struct {
	LogPath           string `toml:"log_path"`           // Full path for log file including filename (creates parent directories)
	LogLevel          string `toml:"log_level"`          // Application log level: debug, info, warn, error
	Locale            string `toml:"locale"`             // Language for default alert button labels (e.g. "en", "de")
	Animated          *bool  `toml:"animated"`           // Default animation for calls that do not override it; nil means true
	PopoverBackground uint32 `toml:"popover_background"` // Popover background as 0xRRGGBB; 0 keeps the default white
}

// LoadOptions reads Options from a TOML file. A missing file is not an
// error and yields zero Options.
func LoadOptions(path string) (Options, error) {
	var options Options
	if path == "" {
		return options, nil
	}

	if _, err := toml.DecodeFile(path, &options); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return options, nil
}

// Init applies options to the framework. It should be called once, before
// any Router is created; routers capture the alert locale at construction.
//
// WAYPOINT_LOG_LEVEL and WAYPOINT_LOCALE override the matching options.
// Setting WAYPOINT_DEBUG enables debug logging of every routing decision.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		internal.SetRawLogLevel(level)
	} else if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	internal.SetSettings(settingsFrom(options))

	internal.GetInternalLogger().Debug("waypoint initialized",
		"locale", internal.GetSettings().Locale,
		"animated", internal.GetSettings().Animated)
}

func settingsFrom(options Options) internal.Settings {
	settings := internal.DefaultSettings()

	if options.Animated != nil {
		settings.Animated = *options.Animated
	}

	if locale := os.Getenv(constants.LocaleEnvVar); locale != "" {
		settings.Locale = locale
	} else if options.Locale != "" {
		settings.Locale = options.Locale
	}

	if options.PopoverBackground != 0 {
		settings.PopoverBackground = internal.HexToColor(options.PopoverBackground)
	}

	return settings
}

// Close flushes and closes the log file, if one was opened.
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
