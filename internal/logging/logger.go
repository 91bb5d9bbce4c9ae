// Package logging sets up the application logger. Logs go to a file
// because stdout belongs to the alt-screen TUI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Open opens (appending) the log file at path and returns a logger
// writing to it. The caller owns closing the returned file.
func Open(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	h := tint.NewHandler(f, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	})
	return slog.New(h).With("app", "roomsense"), f, nil
}
