package numerator

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivx/internal/core/apperror"
	"archivx/internal/core/id"
	"archivx/internal/core/numerator"
)

var riyadh = time.FixedZone("AST", 3*60*60)

func fixedService(t *testing.T, at time.Time, randByte byte) *Service {
	t.Helper()
	ids := id.NewGenerator(
		id.WithClock(func() time.Time { return at }),
		id.WithRand(bytes.NewReader(bytes.Repeat([]byte{randByte}, 10))),
	)
	return New(ids, numerator.Config{Location: riyadh}, WithClock(func() time.Time { return at }))
}

func TestNextCode_Deterministic(t *testing.T) {
	// 23:30 UTC is already the next day in Riyadh.
	at := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
	svc := fixedService(t, at, 0xab)

	code, err := svc.NextCode(context.Background(), numerator.DirectionIncoming)
	require.NoError(t, err)
	assert.Equal(t, "IN250315-ABABABAB", code)
}

func TestNextCode_Format(t *testing.T) {
	svc := New(id.NewGenerator(), numerator.DefaultConfig())
	ctx := context.Background()

	for _, dir := range []numerator.Direction{numerator.DirectionIncoming, numerator.DirectionOutgoing} {
		for i := 0; i < 200; i++ {
			code, err := svc.NextCode(ctx, dir)
			require.NoError(t, err)
			assert.Regexp(t, `^(IN|OUT)\d{6}-[0-9A-F]{8}$`, code)
			assert.Regexp(t, `^[A-Z0-9-]+$`, code)
			assert.True(t, IsCode(code))
		}
	}
}

func TestNextCode_SameDayDistinct(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := New(id.NewGenerator(), numerator.Config{Location: time.UTC}, WithClock(func() time.Time { return at }))
	ctx := context.Background()

	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		code, err := svc.NextCode(ctx, numerator.DirectionOutgoing)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestNextCode_InvalidDirection(t *testing.T) {
	svc := New(nil, numerator.DefaultConfig())

	_, err := svc.NextCode(context.Background(), numerator.Direction("SIDE"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidDirection))
}

func TestNextCode_EntropyFailure(t *testing.T) {
	ids := id.NewGenerator(id.WithRand(iotest.ErrReader(errors.New("no entropy"))))
	svc := New(ids, numerator.DefaultConfig())

	_, err := svc.NextCode(context.Background(), numerator.DirectionIncoming)
	require.Error(t, err)
	assert.True(t, apperror.IsEntropyUnavailable(err))
}

func TestNext_ParsesDirection(t *testing.T) {
	at := time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC)
	svc := fixedService(t, at, 0x0f)

	code, err := svc.Next(context.Background(), "outgoing")
	require.NoError(t, err)
	assert.Equal(t, "OUT241231-0F0F0F0F", code)

	_, err = svc.Next(context.Background(), "sideways")
	assert.Error(t, err)
}

func TestSegmentLength(t *testing.T) {
	at := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	ids := id.NewGenerator(id.WithRand(bytes.NewReader(bytes.Repeat([]byte{0x5c}, 10))))
	svc := New(ids, numerator.Config{Location: time.UTC, SegmentLength: 12}, WithClock(func() time.Time { return at }))

	code, err := svc.NextCode(context.Background(), numerator.DirectionIncoming)
	require.NoError(t, err)
	assert.Equal(t, "IN250102-5C5C5C5C5C5C", code)
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode("OUT250314-9F3A07C2", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, numerator.DirectionOutgoing, c.Direction)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), c.Date)
	assert.Equal(t, "9F3A07C2", c.Segment)
	assert.Equal(t, "OUT250314-9F3A07C2", c.String())
}

func TestParseCode_Invalid(t *testing.T) {
	tests := []string{
		"",
		"IN250314-9f3a07c2",
		"IN250314-9F3A07C",
		"XX250314-9F3A07C2",
		"IN2503149F3A07C2",
		"IN251340-9F3A07C2",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseCode(s, time.UTC)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, apperror.CodeInvalidCode))
		})
	}
}

func TestFormatCode(t *testing.T) {
	got := FormatCode(numerator.DirectionIncoming, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), "deadbeef")
	assert.Equal(t, "IN261016-DEADBEEF", got)
}
