// Package logging provides the leveled logger used by lvsignal blocks and tools.
//
// Loggers are logr.Logger values backed by zap. Blocks take one through an
// option and default to logr.Discard(), so nothing is written unless the
// caller asks for it.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logr verbosities; logger.V(DEBUG) maps to zap's debug level.
const (
	DEBUG = 1
	TRACE = 2
)

// Level is a message severity.
type Level int8

// Severities, lowest first.
const (
	Trace Level = iota // per-sample detail
	Debug              // degenerate but handled conditions
	Info
	Warn
	Error
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("logging: unknown level")

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < Trace || l > Error {
		return fmt.Sprintf("Level(%d)", int8(l))
	}

	return levelNames[l]
}

// ParseLevel converts a case-insensitive name ("trace" .. "error") to a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}

	return Info, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// zapLevel maps l onto zap; Trace sits one step below zap's debug level.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Trace:
		return zapcore.Level(-TRACE)
	case Debug:
		return zapcore.DebugLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a JSON logger writing records at or above level to stderr.
func New(level Level) (logr.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	cfg.Sampling = nil

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: build zap logger: %w", err)
	}

	return zapr.NewLogger(z), nil
}

// NewFromCore wraps an existing zap core, e.g. an observer in tests.
func NewFromCore(core zapcore.Core) logr.Logger {
	return zapr.NewLogger(zap.New(core))
}

// Output writes msg to logger with the given severity. Warn goes to zap's
// warn level when logger is zap-backed; other sinks get an info record
// tagged with a "severity" key.
func Output(logger logr.Logger, level Level, msg string) {
	switch level {
	case Trace:
		logger.V(TRACE).Info(msg)
	case Debug:
		logger.V(DEBUG).Info(msg)
	case Warn:
		if u, ok := logger.GetSink().(zapr.Underlier); ok {
			u.GetUnderlying().Warn(msg)
			return
		}
		logger.Info(msg, "severity", Warn.String())
	case Error:
		logger.Error(nil, msg)
	default:
		logger.Info(msg)
	}
}
