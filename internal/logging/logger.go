package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger as the process default and returns
// it. Additional handlers (such as the store handler) are attached
// later through a MultiHandler once the document store is open.
func Setup() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
