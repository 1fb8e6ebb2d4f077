// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a level name such as "debug" or "warn" to an AtomicLevel.
func ParseLevel(name string) (zap.AtomicLevel, error) {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("log level %q: %w", name, err)
	}

	return zap.NewAtomicLevelAt(lvl), nil
}

// New returns a console logger writing to w at the given level.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return NewWithLevel(lvl, w), nil
}

// NewWithLevel is New with a caller-owned level, so the level can be changed
// after the logger has been handed out.
func NewWithLevel(level zap.AtomicLevel, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core).Named("hellfloat")
}
