// Package logging provides a leveled logger writing to stdout and a rotated
// log file. Source adapters and the scorer log their failures here; those
// failures are otherwise recovered locally and never surfaced to callers.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelStrings = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Logger writes prefixed, leveled lines for one component.
type Logger struct {
	loggers map[Level]*log.Logger
	level   Level
}

// Options controls file rotation for New.
type Options struct {
	Path       string // empty disables the file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Level      Level
}

// New builds a logger for the named component. With a file path configured,
// output goes to both stdout and a size-rotated file.
func New(component string, opts Options) (*Logger, error) {
	var w io.Writer = os.Stdout

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		w = io.MultiWriter(rotator, os.Stdout)
	}

	loggers := make(map[Level]*log.Logger, len(levelStrings))
	for level, name := range levelStrings {
		loggers[level] = log.New(w, fmt.Sprintf("[%s] [%s] ", name, component), log.LstdFlags)
	}

	return &Logger{loggers: loggers, level: opts.Level}, nil
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	loggers := make(map[Level]*log.Logger, len(levelStrings))
	for level := range levelStrings {
		loggers[level] = log.New(io.Discard, "", 0)
	}
	return &Logger{loggers: loggers, level: LevelDebug}
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.logf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l == nil || l.level > level {
		return
	}
	l.loggers[level].Printf(format, v...)
}

// ParseLevel maps a config string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}
