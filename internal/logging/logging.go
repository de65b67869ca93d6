// Package logging provides the colored, prefixed console logger used
// throughout the search service and the CLI, grounded on the
// [PREFIX] [LEVEL] color-coded convention visible in the teacher's
// config/log_const.go constants and its callers.
package logging

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/vinom-labs/repmaze/config"
	"github.com/vinom-labs/repmaze/quizmaster"
)

// Logger is a colored, prefixed logger safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	std   *log.Logger
	color string
}

// New creates a Logger that writes "[prefix] <timestamp> [LEVEL] message"
// lines to out. The level tag is always green for INFO and red for ERROR;
// color tints the message text of Progress lines.
func New(prefix, color string, out io.Writer) *Logger {
	return &Logger{
		std:   log.New(out, fmt.Sprintf("[%s] ", prefix), log.LstdFlags),
		color: color,
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}

// Progress implements quizmaster.Logger, reporting the running tallies a
// search strategy maintains between evaluations.
func (l *Logger) Progress(evaluated, solved, prunedAbstract, prunedNorm int, best quizmaster.Best) {
	l.Info(fmt.Sprintf(
		"%sevaluated=%d solved=%d prunedAbstract=%d prunedNorm=%d bestLen=%d",
		l.color, evaluated, solved, prunedAbstract, prunedNorm, best.Length,
	) + config.ColorReset)
}

var _ quizmaster.Logger = (*Logger)(nil)
