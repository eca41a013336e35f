// Package logging provides structured logging using the Uber zap library.
//
// Roster is a full-screen TUI, so logs go to a file rather than the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// New builds a SugaredLogger writing to the given file path. An empty path
// yields a no-op logger.
func New(path string) (*zap.SugaredLogger, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return Nop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{trimmed}
	cfg.ErrorOutputPaths = []string{trimmed}

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return zl.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
