// Package diag is the ambient structured-logging collaborator injected into
// the dispatcher, modeled on the teacher's own migration from a
// process-wide logger to an explicit, injectable one (see fs/log and
// fs/logger in the pack, which layer a LogLevel enum over log/slog).
package diag

import (
	"context"
	"log/slog"
	"os"
)

// Level mirrors the teacher's LogLevel enum, narrowed to what the
// dispatcher itself ever emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger is the collaborator the dispatcher logs through. Tests and
// embedders construct their own instead of reaching for a package-level
// singleton, per the "process-wide mutable singletons become explicit
// collaborators" redesign note.
type Logger struct {
	base *slog.Logger
}

// New wraps slog's default text handler writing to stderr, the same
// ambient choice the teacher's own slog adoption makes.
func New() *Logger {
	return &Logger{base: slog.New(slog.NewTextHandler(os.Stderr, nil))}
}

// Discard returns a Logger that drops everything; the default for tests
// that don't care about diagnostics.
func Discard() *Logger {
	return &Logger{base: slog.New(slog.NewTextHandler(discardWriter{}, nil))}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Log emits one structured record at the given level.
func (l *Logger) Log(level Level, msg string, args ...any) {
	if l == nil {
		return
	}
	l.base.Log(context.Background(), level.slog(), msg, args...)
}

// Debugf is shorthand for Log(LevelDebug, ...).
func (l *Logger) Debugf(msg string, args ...any) { l.Log(LevelDebug, msg, args...) }

// Infof is shorthand for Log(LevelInfo, ...).
func (l *Logger) Infof(msg string, args ...any) { l.Log(LevelInfo, msg, args...) }

// Errorf is shorthand for Log(LevelError, ...).
func (l *Logger) Errorf(msg string, args ...any) { l.Log(LevelError, msg, args...) }
