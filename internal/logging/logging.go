package logging

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

// Error is the class of logger construction errors.
var Error = errs.Class("logging")

type LoggerCtxKey struct{}

type Logger struct {
	log *zap.Logger
}

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New builds a logger writing to stderr at level (debug, info, warn, error).
func New(level string, opts ...Option) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return &Logger{log: logger}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{log: zap.NewNop()}
}

// FromContext returns the logger stored by GetContext, or a Nop logger.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Nop()
	}

	if l, ok := ctx.Value(LoggerCtxKey{}).(*Logger); ok {
		return l
	}

	return Nop()
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggerCtxKey{}, l)
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}
