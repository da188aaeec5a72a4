// Package logging builds the process logger from the log settings.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/annotext/config"
)

// EnvDebugLog turns file logging on with the default path when it holds a
// true value and no file is configured.
const EnvDebugLog = "ANNOTEXT_LOG"

// DefaultFile is the log path used when logging is enabled through
// EnvDebugLog alone.
const DefaultFile = "annotext.log"

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// New returns a logger for cfg. The terminal belongs to the editor, so
// records go to a JSON file or are dropped. The returned Closer flushes
// and releases the file.
func New(cfg config.Log, getenv func(string) string) (*zap.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.File
	if path == "" && getenv != nil {
		if on, _ := strconv.ParseBool(getenv(EnvDebugLog)); on {
			path = DefaultFile
		}
	}
	if path == "" {
		return zap.NewNop(), closerFunc(func() error { return nil }), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := NewWriter(f, level)
	return log, closerFunc(func() error {
		_ = log.Sync()
		return f.Close()
	}), nil
}

// NewWriter returns a JSON logger writing records at level and above to w.
func NewWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// ParseLevel maps debug, info, warn and error to zap levels.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", config.ErrInvalidValue, s)
	}
}
