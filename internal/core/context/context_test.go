package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestGetTrace_Stored(t *testing.T) {
	tc := NewTraceContext()
	ctx := WithTrace(context.Background(), tc)

	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, tc.TraceID, got.TraceID)
	assert.Equal(t, tc.RequestID, GetRequestID(ctx))
}

func TestGetTrace_SpanWins(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:  trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	})
	ctx := WithTrace(context.Background(), &TraceContext{TraceID: "stored", RequestID: "req-1"})
	ctx = trace.ContextWithSpanContext(ctx, sc)

	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", got.TraceID)
	assert.Equal(t, "0102030405060708", got.SpanID)
	assert.Equal(t, "req-1", got.RequestID)
}

func TestActor(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetUserID(ctx))
	assert.Nil(t, GetTrace(ctx))

	ctx = WithActor(ctx, &Actor{UserID: "u-7", CompanyID: "c-1"})
	assert.Equal(t, "u-7", GetUserID(ctx))
	assert.Equal(t, "c-1", GetCompanyID(ctx))
}
