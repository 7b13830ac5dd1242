package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr).
type Logger struct {
	Enabled bool
	W       io.Writer

	once sync.Once
	out  *charmlog.Logger
}

func (l *Logger) backend() *charmlog.Logger {
	l.once.Do(func() {
		w := l.W
		if w == nil {
			w = os.Stderr
		}
		l.out = charmlog.NewWithOptions(w, charmlog.Options{
			Level: charmlog.DebugLevel,
		})
	})
	return l.out
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false or l is nil.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.backend().Info(fmt.Sprintf(format, args...))
}

// Debug writes msg with key-value pairs when Enabled is true.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.backend().Debug(msg, keyvals...)
}

// Warn writes msg with key-value pairs when Enabled is true.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil || !l.Enabled {
		return
	}
	l.backend().Warn(msg, keyvals...)
}
