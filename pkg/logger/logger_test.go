package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "archivx/internal/core/context"
)

func TestFromContext_EnrichesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	ctx := WithLogger(context.Background(), log)
	ctx = appctx.WithTrace(ctx, &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})
	ctx = appctx.WithActor(ctx, &appctx.Actor{UserID: "u-1", CompanyID: "c-1"})

	Info(ctx, "correspondence registered", "code", "IN250101-0000000A")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "u-1", fields["user_id"])
	assert.Equal(t, "c-1", fields["company_id"])
	assert.Equal(t, "IN250101-0000000A", fields["code"])
}

func TestWithComponent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	FromZap(zap.New(core)).WithComponent("receipt").Debugw("hidden")
	FromZap(zap.New(core)).WithComponent("receipt").Infow("shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "receipt", logs.All()[0].ContextMap()["component"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Infow("discarded") })
}

func TestWarn_KeyValuesAreFields(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := WithLogger(context.Background(), FromZap(zap.New(core)))

	Warn(ctx, "report audit failed", "error", "sink closed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "report audit failed", entries[0].Message)
	assert.Equal(t, "sink closed", entries[0].ContextMap()["error"])
}

func TestFromContext_SkipsEmptyFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), FromZap(zap.New(core)))
	ctx = appctx.WithActor(ctx, &appctx.Actor{UserID: "u-1"})

	Info(ctx, "lookup")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "u-1", fields["user_id"])
	assert.NotContains(t, fields, "company_id")
	assert.NotContains(t, fields, "trace_id")
}

func TestWithContext_Unchanged(t *testing.T) {
	l := Nop()
	assert.Same(t, l, l.WithContext(context.Background()))
}

func TestConfig_Defaults(t *testing.T) {
	zc := Config{}.zapConfig()

	assert.Equal(t, []string{"stderr"}, zc.OutputPaths)
	assert.Equal(t, zapcore.InfoLevel, zc.Level.Level())
	assert.Equal(t, "ts", zc.EncoderConfig.TimeKey)

	zc = Config{Level: "debug", Development: true, OutputPaths: []string{"stdout"}}.zapConfig()
	assert.Equal(t, []string{"stdout"}, zc.OutputPaths)
	assert.Equal(t, zapcore.DebugLevel, zc.Level.Level())
	assert.True(t, zc.Development)
}

func TestDefault_Shared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
