package testhelpers

import (
	"io"
	"log/slog"

	"github.com/jmorales/ciclofit/internal/logging"
)

// NewLogger creates a debug-level logger writing to the given sink such as
// testhelpers.Writer. It uses the same handler chain as the production logger
// so that context attributes show up in test output.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}
