package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	IconWarning = "⚠"
	IconVerbose = "…"
	IconDebug   = "»"
)

// Logger prints leveled diagnostics. Verbose and debug output are dropped
// unless enabled.
type Logger struct {
	verbose      bool
	debug        bool
	colors       bool
	output       io.Writer
	verboseColor *color.Color
	warnColor    *color.Color
	debugColor   *color.Color
	mutex        sync.Mutex
	now          func() time.Time
}

// New creates a logger writing to w. Colors are used only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer, verbose bool, debug bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		verbose:      verbose || debug,
		debug:        debug,
		colors:       os.Getenv("NO_COLOR") == "" && isTerminal(w),
		output:       w,
		verboseColor: color.New(color.FgCyan),
		warnColor:    color.New(color.FgYellow, color.Bold),
		debugColor:   color.New(color.Faint, color.FgBlue),
		now:          time.Now,
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && (fi.Mode()&os.ModeCharDevice) != 0
}

func (l *Logger) print(c *color.Color, format string, v ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.colors {
		c.Fprintf(l.output, format, v...)
		return
	}
	fmt.Fprintf(l.output, format, v...)
}

// Debugf prints formatted debug message when debug enabled
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	msg := fmt.Sprintf(format, v...)
	l.print(l.debugColor, "%s %s [DEBUG] %s\n", IconDebug, l.now().Format("15:04:05.000"), msg)
}

// Verbosef prints formatted verbose message when verbose enabled
func (l *Logger) Verbosef(format string, v ...interface{}) {
	if !l.verbose {
		return
	}
	l.print(l.verboseColor, "%s [INFO] %s\n", IconVerbose, fmt.Sprintf(format, v...))
}

// Warnf prints warning message when verbose enabled
func (l *Logger) Warnf(format string, v ...interface{}) {
	if !l.verbose {
		return
	}
	l.print(l.warnColor, "%s [WARN] %s\n", IconWarning, fmt.Sprintf(format, v...))
}
