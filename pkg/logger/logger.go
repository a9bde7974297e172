// Package logger is the zap based logging used across archivx. A Logger rides
// in the context so domain code can log with the trace and actor of the
// current operation attached.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appctx "archivx/internal/core/context"
)

// Logger is a sugared zap logger.
type Logger struct {
	*zap.SugaredLogger
}

// Config selects level, encoding and destinations.
type Config struct {
	// Level is debug, info, warn or error. Anything else means info.
	Level string
	// Development switches to the colored console encoder.
	Development bool
	// OutputPaths defaults to stderr so that stdout carries command output only.
	OutputPaths []string
}

func (c Config) zapConfig() zap.Config {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	zc.Level = lvl

	zc.OutputPaths = []string{"stderr"}
	if len(c.OutputPaths) > 0 {
		zc.OutputPaths = c.OutputPaths
	}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc
}

// New builds a Logger. Only unusable output paths fail.
func New(cfg Config) (*Logger, error) {
	// report the caller of Debug, Info, Warn and Error
	l, err := cfg.zapConfig().Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return FromZap(l), nil
}

// FromZap wraps l, typically one built on an observer core in tests.
func FromZap(l *zap.Logger) *Logger {
	return &Logger{l.Sugar()}
}

// Nop discards everything.
func Nop() *Logger {
	return FromZap(zap.NewNop())
}

var defaultLogger = sync.OnceValue(func() *Logger {
	l, err := New(Config{})
	if err != nil {
		return Nop()
	}
	return l
})

// Default is the process wide info level logger on stderr.
func Default() *Logger {
	return defaultLogger()
}

// contextFields lists the trace and actor values of ctx that are set.
func contextFields(ctx context.Context) []any {
	var kv []any
	add := func(key, value string) {
		if value != "" {
			kv = append(kv, key, value)
		}
	}

	if tc := appctx.GetTrace(ctx); tc != nil {
		add("trace_id", tc.TraceID)
		add("span_id", tc.SpanID)
		add("request_id", tc.RequestID)
	}
	if a := appctx.GetActor(ctx); a != nil {
		add("user_id", a.UserID)
		add("company_id", a.CompanyID)
	}
	return kv
}

// WithContext attaches the trace and actor carried by ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	kv := contextFields(ctx)
	if len(kv) == 0 {
		return l
	}
	return l.With(kv...)
}

// With adds key-value pairs.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{l.SugaredLogger.With(keysAndValues...)}
}

// WithComponent tags entries with the subsystem that wrote them.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With("component", name)
}

type ctxKey struct{}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or Default, enriched with the
// trace and actor of ctx.
func FromContext(ctx context.Context) *Logger {
	l, ok := ctx.Value(ctxKey{}).(*Logger)
	if !ok {
		l = Default()
	}
	return l.WithContext(ctx)
}

func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Logw(zapcore.DebugLevel, msg, keysAndValues...)
}

func Info(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Logw(zapcore.InfoLevel, msg, keysAndValues...)
}

func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Logw(zapcore.WarnLevel, msg, keysAndValues...)
}

func Error(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Logw(zapcore.ErrorLevel, msg, keysAndValues...)
}

// Fatal logs and exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Logw(zapcore.FatalLevel, msg, keysAndValues...)
}
