package calculation

import (
	"fmt"
	"io"
	"os"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StderrLogger writes leveled log lines, to standard error unless W is set.
// Debug lines are suppressed unless Debug is true.
type StderrLogger struct {
	Debug bool
	W     io.Writer
}

func (l StderrLogger) Debugf(format string, args ...any) {
	if l.Debug {
		l.printf("DEBUG", format, args)
	}
}

func (l StderrLogger) Infof(format string, args ...any)  { l.printf("INFO", format, args) }
func (l StderrLogger) Warnf(format string, args ...any)  { l.printf("WARN", format, args) }
func (l StderrLogger) Errorf(format string, args ...any) { l.printf("ERROR", format, args) }

func (l StderrLogger) printf(level, format string, args []any) {
	w := l.W
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
