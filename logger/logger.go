package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

const prefix = "heaven"

// New returns the game logger writing to stderr at the named level.
func New(level string) (*log.Logger, error) {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w at the named level. An empty
// level means info.
func NewWithWriter(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Once logs each key at most once until Reset. It keeps per-frame failures
// from flooding the output.
type Once struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// Error logs msg at error level unless key has already been logged.
func (o *Once) Error(l *log.Logger, key, msg string, keyvals ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.seen == nil {
		o.seen = make(map[string]struct{})
	}
	if _, ok := o.seen[key]; ok {
		return
	}
	o.seen[key] = struct{}{}
	l.Error(msg, keyvals...)
}

// Reset forgets every logged key.
func (o *Once) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = nil
}
