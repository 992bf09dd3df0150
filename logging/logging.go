// Package logging builds the zap loggers used by the TUI and the MCP servers.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how verbosely to log.
type Options struct {
	// Path is a file path or "stderr"/"stdout". Empty disables logging.
	Path  string
	Level string
}

// New returns a production-configured logger writing JSON to opts.Path.
// An empty path returns a no-op logger; the TUI owns stdout.
func New(opts Options) (*zap.Logger, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(raw string) (zapcore.Level, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	if v == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return level, nil
}
