// Package log provides category-tagged structured logging for the registrar.
// Entries are encoded as JSON by zap and written to a debug log file, so the
// interactive console output stays clean. Until Init is called every call is
// a no-op.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Category groups related log messages.
type Category string

const (
	CatAuth    Category = "auth"    // Login attempts
	CatCatalog Category = "catalog" // Course add/remove/update/search
	CatEnroll  Category = "enroll"  // Register and drop
	CatReport  Category = "report"  // Student reports and listings
	CatConfig  Category = "config"  // Configuration loading/saving
	CatConsole Category = "console" // Menu actions
	CatCache   Category = "cache"   // Search cache
	CatTrace   Category = "trace"   // Tracing provider lifecycle
)

// Config selects where and how verbosely to log.
type Config struct {
	Path  string
	Level Level
}

var (
	mu            sync.RWMutex
	defaultLogger = zap.NewNop()
	atomicLevel   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init opens cfg.Path for appending and routes all logging there.
// Returns a cleanup function that flushes and closes the file.
func Init(cfg Config) (func(), error) {
	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path comes from the user's config
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	restore := InitWithWriter(f, cfg.Level)
	return func() {
		restore()
		_ = f.Close()
	}, nil
}

// InitWithWriter routes logging to w. The returned function flushes the
// logger and restores the no-op logger.
func InitWithWriter(w io.Writer, level Level) func() {
	encCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		LevelKey:   "level",
		TimeKey:    "ts",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(l.String())
		},
		EncodeTime: zapcore.ISO8601TimeEncoder,
	}
	atomicLevel.SetLevel(level.zapLevel())
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), atomicLevel)

	mu.Lock()
	defaultLogger = zap.New(core)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		_ = defaultLogger.Sync()
		defaultLogger = zap.NewNop()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	mu.RLock()
	logger := defaultLogger
	mu.RUnlock()

	ce := logger.Check(level.zapLevel(), msg)
	if ce == nil {
		return
	}
	ce.Write(toZapFields(cat, fields)...)
}

// toZapFields turns alternating key/value pairs into zap fields. An orphan
// trailing key is logged with the value "<missing>".
func toZapFields(cat Category, fields []any) []zap.Field {
	out := make([]zap.Field, 0, len(fields)/2+2)
	out = append(out, zap.String("category", string(cat)))
	for i := 0; i+1 < len(fields); i += 2 {
		out = append(out, zap.Any(fmt.Sprint(fields[i]), fields[i+1]))
	}
	if len(fields)%2 != 0 {
		out = append(out, zap.String(fmt.Sprint(fields[len(fields)-1]), "<missing>"))
	}
	return out
}
