// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger tagged with the service and process name.
// Development environments get debug level.
func New(environment, process string) *slog.Logger {
	return newWithWriter(os.Stdout, environment, process)
}

func newWithWriter(w io.Writer, environment, process string) *slog.Logger {
	level := slog.LevelInfo
	if environment == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "marketplace", "process", process)
}
