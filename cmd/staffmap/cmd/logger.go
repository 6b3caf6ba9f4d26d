package cmd

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/rosterops/staffmap/pkg/logging"
)

// NewLogger creates a configured logger based on the application
// configuration. Log level precedence (highest to lowest):
//  1. -v/--verbose flag (shortcut for debug)
//  2. -q/--quiet flag (shortcut for warn)
//  3. LOG_LEVEL environment variable
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)
	zerolog.SetGlobalLevel(level)

	if config.LogFormat == "json" {
		return logging.NewJSON(os.Stderr).Level(level)
	}
	return logging.NewConsole().Level(level)
}

// determineLogLevel determines the log level using the precedence rules.
func determineLogLevel(config *Config) zerolog.Level {
	if config.Verbose && config.Quiet {
		return zerolog.WarnLevel
	}
	if config.Verbose {
		return zerolog.DebugLevel
	}
	if config.Quiet {
		return zerolog.WarnLevel
	}

	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil && config.LogLevel != "" {
		return level
	}
	return zerolog.InfoLevel
}
