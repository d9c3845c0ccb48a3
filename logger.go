package glass

import (
	"log/slog"

	"github.com/gogpu/glass/internal/logx"
)

// SetLogger configures the logger for glass and all its sub-packages.
// By default, glass produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by glass:
//   - [slog.LevelDebug]: filter rebuilds, mount/unmount, drag start and end
//   - [slog.LevelWarn]: out-of-range parameters that were clamped
//
// Example:
//
//	glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger used by glass.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
