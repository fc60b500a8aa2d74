package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "termpick.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
	sink         *os.File
	zlog         = zap.NewNop()
)

// Error writes err to the log file, if one is configured.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error(err.Error(), zap.Error(err))
}

// SetTraceEnabled toggles emission of structured trace entries. Enabling
// tracing without a configured path logs to termpick.log in the working
// directory.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	traceEnabled = enabled
	rebuildLocked()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := zlog
	mu.Unlock()
	if !enabled {
		return
	}
	if payload == nil {
		l.Debug(event)
		return
	}
	l.Debug(event, zap.Any("payload", payload))
}

// Configure sets the log destination. An empty path disables file logging
// unless tracing is on. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	logPath = strings.TrimSpace(path)
	rebuildLocked()
}

// Logr exposes the shared logger through the logr interface.
func Logr() logr.Logger {
	return zapr.NewLogger(current())
}

// Sync flushes buffered entries.
func Sync() {
	if err := current().Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

func current() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return zlog
}

func rebuildLocked() {
	_ = zlog.Sync()
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
	path := logPath
	if path == "" {
		if !traceEnabled {
			zlog = zap.NewNop()
			return
		}
		path = defaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		zlog = zap.NewNop()
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		zlog = zap.NewNop()
		return
	}
	sink = f

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "event"

	level := zapcore.InfoLevel
	if traceEnabled {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(f),
		zap.NewAtomicLevelAt(level),
	)
	zlog = zap.New(core, zap.AddCaller())
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF)
}
