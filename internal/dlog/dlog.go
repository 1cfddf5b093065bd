// Package dlog is the game's diagnostic logging facade.
//
// Log, Warn and the assertions are debug-build-only: in a `release` build
// they compile to empty functions (see dlog_release.go), so call sites cost
// nothing in shipped binaries. Error and Exception are present in every
// build and are never suppressed by the enabled flag.
//
// The sink is best-effort. Logging must never end up on the critical path,
// so write failures are swallowed.
package dlog

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// enabled gates Log and Warn only. Written at startup (flags), read
// thereafter; never written under contention, so it carries no lock.
var enabled = true

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(swallowWriter{w: w})
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// swallowWriter drops sink errors so a broken sink cannot surface into game
// code.
type swallowWriter struct{ w io.Writer }

func (s swallowWriter) Write(p []byte) (int, error) {
	_, _ = s.w.Write(p)
	return len(p), nil
}

// SetEnabled flips the gate for Log and Warn. Errors and exceptions stay on.
func SetEnabled(b bool) { enabled = b }

// Enabled reports the current gate state.
func Enabled() bool { return enabled }

// SetOutput redirects the sink (the TUI owns the terminal, so main usually
// points this at a file).
func SetOutput(w io.Writer) { logger.SetOutput(swallowWriter{w: w}) }

// Logger exposes the underlying logrus instance, mainly so tests can attach
// hooks.
func Logger() *logrus.Logger { return logger }

// Error emits an error-level entry. Never gated.
func Error(msg string, ctx ...any) {
	entry(ctx).Error(msg)
}

// Exception emits an error-level entry for err. Never gated.
func Exception(err error, ctx ...any) {
	if err == nil {
		return
	}
	entry(ctx).WithError(err).Error("exception")
}

// entry attaches the optional correlation context to a logrus entry.
func entry(ctx []any) *logrus.Entry {
	if len(ctx) == 0 {
		return logrus.NewEntry(logger)
	}
	return logger.WithField("context", fmt.Sprint(ctx...))
}
