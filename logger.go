package gg2d

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler discards every record. Enabled returns false, so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for gg2d, its sub-packages and the gg
// engine underneath. By default nothing is logged. Pass nil to restore the
// silent default.
//
// Log levels used by gg2d:
//   - [slog.LevelDebug]: skipped frames, dash fallbacks, font resolution
//   - [slog.LevelInfo]: lifecycle events (strategy selection, device sharing)
//   - [slog.LevelWarn]: failures caught at a boundary (factory, bridge)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. Sub-packages call it to share the
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
