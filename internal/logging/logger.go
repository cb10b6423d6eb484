// Package logging provides the process-wide diagnostic logger.
//
// Diagnostics go to stderr through a zerolog console writer and, when a log
// file is configured, to a size-rotated file. User-facing command output
// (conversion results, printer listings, usage) is written by the CLI
// directly and never passes through this package.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLevel keeps the CLI silent unless something goes wrong.
const DefaultLevel = "warn"

// Options configures Init.
type Options struct {
	Level      string    // debug, info, warn, error (default: warn)
	Console    io.Writer // console sink (default: os.Stderr)
	File       string    // optional rotating log file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
)

// Init replaces the package logger. It returns a closer for the log file, which
// is a no-op when no file is configured.
func Init(opts Options) (io.Closer, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nopCloser{}, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		writers = append(writers, rotator)
		closer = rotator
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(lvl)

	mu.Lock()
	logger = l
	mu.Unlock()
	return closer, nil
}

// SetLoggerForTest swaps the package logger, typically for one writing to a buffer.
func SetLoggerForTest(l zerolog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns a copy of the current logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, kv ...any) { write(zerolog.DebugLevel, msg, kv) }
func Info(msg string, kv ...any)  { write(zerolog.InfoLevel, msg, kv) }
func Warn(msg string, kv ...any)  { write(zerolog.WarnLevel, msg, kv) }
func Error(msg string, kv ...any) { write(zerolog.ErrorLevel, msg, kv) }

// Debugf adapts printf-style callbacks (automaxprocs, rod) to the debug level.
func Debugf(format string, args ...any) {
	write(zerolog.DebugLevel, fmt.Sprintf(format, args...), nil)
}

func write(lvl zerolog.Level, msg string, kv []any) {
	l := Logger()
	ev := l.WithLevel(lvl)
	if ev == nil {
		return
	}
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			ev = ev.Interface(key, nil)
			break
		}
		switch v := kv[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Msg(msg)
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
