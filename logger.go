package board

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/board/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for board and its sub-packages.
// By default, board produces no log output.
// Pass nil to restore the default silent behavior.
//
// Log levels used by board:
//   - [slog.LevelDebug]: emission statistics (shape counts, palette size)
//   - [slog.LevelWarn]: recoverable oddities (alignment fallback, font fallback)
//
// Example:
//
//	board.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	text.SetLogger(l)
}

// Logger returns the current logger used by board.
// The document package calls this to share the same logger
// configuration; text receives it from SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
