// Package logging hands out prefixed charm loggers that share one level and
// one output.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	level   = log.InfoLevel
	out     io.Writer = os.Stderr
	loggers = map[string]*log.Logger{}
)

// New returns the shared logger for prefix, creating it on first use. Its
// level follows SetLevel.
func New(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[prefix]; ok {
		return l
	}
	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	loggers[prefix] = l
	return l
}

// NewTo returns a logger writing to w at debug level; it is not affected by
// SetLevel or SetOutput. Tests use it to capture output.
func NewTo(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  log.DebugLevel,
	})
}

// SetLevel parses name ("debug", "info", "warn", "error") and applies it to
// every logger handed out by New.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
	return nil
}

// SetOutput redirects every logger handed out by New.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
