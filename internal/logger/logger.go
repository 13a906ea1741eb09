// Package logger builds the slog.Logger shared by the API server and the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger writing to w at the given level.
// format "text" selects tint's colored handler; anything else selects JSON,
// which is what log aggregators expect. An unparsable level falls back to info.
func New(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}

	if format == "text" {
		opts := tint.Options{Level: logLevel, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
		return slog.New(tint.NewHandler(w, &opts))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// isTerminal reports whether w is a character device such as a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
