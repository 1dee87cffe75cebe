package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that drops every record, keeping test
// output readable when services log skipped candidates.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
