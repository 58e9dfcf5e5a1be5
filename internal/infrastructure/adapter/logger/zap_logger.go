package logger

import (
	"errors"
	"strings"
	"syscall"

	"github.com/guidy-app/joblight/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the encoder and destination of the zap logger
type Options struct {
	Level      string
	Format     string // json or console
	Output     string // stdout, stderr or a file path
	CallerInfo bool
}

// ZapLogger adapts a zap.Logger to core.Logger. The level is atomic so it
// can be changed while requests are being logged.
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
}

var zapLevels = map[core.LogLevel]zapcore.Level{
	core.LogLevelDebug: zapcore.DebugLevel,
	core.LogLevelInfo:  zapcore.InfoLevel,
	core.LogLevelWarn:  zapcore.WarnLevel,
	core.LogLevelError: zapcore.ErrorLevel,
}

// NewZapLogger creates a zap-based logger. Production uses JSON, development a colored console.
func NewZapLogger(isProduction bool) core.Logger {
	format := "console"
	if isProduction {
		format = "json"
	}
	return NewWithOptions(Options{Level: "info", Format: format, Output: "stdout", CallerInfo: true})
}

// NewWithOptions creates a zap-based logger from explicit options
func NewWithOptions(opts Options) core.Logger {
	var cfg zap.Config
	if opts.Format == "json" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo
	if opts.Output != "" {
		cfg.OutputPaths = []string{opts.Output}
	}

	l := &ZapLogger{atom: zap.NewAtomicLevel()}
	cfg.Level = l.atom

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	l.logger = zapLogger
	l.SetLevel(ParseLevel(opts.Level))
	return l
}

// ParseLevel converts a configured level name, defaulting to info
func ParseLevel(level string) core.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return core.LogLevelDebug
	case "warn", "warning":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// SetLevel sets the minimum log level; unknown levels fall back to info
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	zl, ok := zapLevels[level]
	if !ok {
		zl = zapcore.InfoLevel
	}
	l.atom.SetLevel(zl)
}

// GetLevel returns the current minimum level
func (l *ZapLogger) GetLevel() core.LogLevel {
	current := l.atom.Level()
	for level, zl := range zapLevels {
		if zl == current {
			return level
		}
	}
	return core.LogLevelInfo
}

func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zapFields = append(zapFields, zap.NamedError(k, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush writes buffered entries. Terminals and pipes reject fsync, which is
// not a lost write and is not reported.
func (l *ZapLogger) Flush() error {
	err := l.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
