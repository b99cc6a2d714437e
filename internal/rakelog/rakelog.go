// Package rakelog provides the leveled stderr logging used throughout
// rakego: INFO for progress and directory changes, WARN for overrides and
// keepgoing recipe failures, ERROR for fatal top-level failures, and PANIC
// for invariant violations that should never happen.
package rakelog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Logger wraps a *logrus.Logger configured to rakego's conventions:
// stderr output, a text formatter, and color gated on terminal detection.
type Logger struct {
	entry *logrus.Logger
}

// New creates a Logger writing to stderr. useColor, when nil, is
// auto-detected from whether stderr is attached to a terminal; pass an
// explicit true/false to force the decision (mirrors the teacher's
// ColorAlways/ColorNever/ColorAuto tri-state).
func New(useColor *bool) *Logger {
	colorize := resolveColor(useColor)

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !colorize,
		ForceColors:      colorize,
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	return &Logger{entry: l}
}

// resolveColor applies the teacher's auto/always/never tri-state: an
// explicit preference wins, otherwise fall back to terminal detection.
func resolveColor(useColor *bool) bool {
	if useColor != nil {
		return *useColor
	}
	return IsTerminal(os.Stderr)
}

// IsTerminal reports whether f is attached to a terminal. New uses it on
// stderr when no explicit color preference is given.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetOutput redirects log output, used by tests to capture log lines.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.SetOutput(w)
}

// Info logs a routine progress message (directory changes, recipe echo
// lines).
func (l *Logger) Info(args ...any) {
	l.entry.Info(args...)
}

// Infof logs a formatted routine progress message.
func (l *Logger) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

// Warn logs a non-fatal condition: an override, or a keepgoing recipe
// failure.
func (l *Logger) Warn(args ...any) {
	l.entry.Warn(args...)
}

// Warnf logs a formatted non-fatal condition.
func (l *Logger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

// Error logs a fatal, top-level failure before the process exits 1.
func (l *Logger) Error(args ...any) {
	l.entry.Error(args...)
}

// Errorf logs a formatted fatal, top-level failure.
func (l *Logger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

// Panic logs an invariant violation. Unlike logrus's own Panic, this does
// not itself panic: it writes an error-level entry carrying a "panic"
// level field and returns.
func (l *Logger) Panic(args ...any) {
	e := l.entry.WithField("level", "panic")
	e.Error(args...)
}
