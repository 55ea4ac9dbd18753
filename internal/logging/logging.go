// Package logging builds the file-backed logger. The TUI owns the
// terminal, so log output always goes to a file under the state dir.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogPath resolves the log file location:
// $XDG_STATE_HOME/kazlearn/kazlearn.log, falling back to
// ~/.local/state/kazlearn/kazlearn.log.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "kazlearn", "kazlearn.log"), nil
}

// New creates a production logger writing to the given file. An empty
// path resolves to DefaultLogPath. Callers that cannot log (or don't
// care) should fall back to zap.NewNop.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
