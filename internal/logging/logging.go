package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogName = "pinta.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = DefaultPath()
	logger       = newLogger(logPath)
)

// appendWriter opens the log for every write so no descriptor is held while
// the terminal is handed over to tmux.
type appendWriter struct {
	path string
}

func (w appendWriter) Write(p []byte) (int, error) {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return f.Write(p)
}

func newLogger(path string) zerolog.Logger {
	return zerolog.New(appendWriter{path: path}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// DefaultPath is the log location used when none is configured.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return defaultLogName
	}
	return filepath.Join(dir, "pinta", defaultLogName)
}

// Path returns the active log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogName
	}
	logPath = path
	logger = newLogger(path).Level(level(traceEnabled))
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	traceEnabled = enabled
	logger = logger.Level(level(enabled))
}

func level(trace bool) zerolog.Level {
	if trace {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func current() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Error records err at error level. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	l := current()
	l.Error().Err(err).Send()
}

// Info records a lifecycle message.
func Info(msg string) {
	l := current()
	l.Info().Msg(msg)
}

// Trace records a structured event when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled {
		return
	}
	e := l.Debug().Str("event", event)
	if payload != nil {
		e = e.Interface("payload", payload)
	}
	e.Send()
}
