package correspondence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"archivx/internal/core/apperror"
	appctx "archivx/internal/core/context"
	"archivx/internal/core/id"
	"archivx/internal/core/numerator"
	"archivx/internal/domain/audit"
	"archivx/pkg/logger"
	pkgnumerator "archivx/pkg/numerator"
)

var riyadh = time.FixedZone("AST", 3*60*60)

func validInput() CreateInput {
	return CreateInput{
		Type:      TypeIncoming,
		Title:     "طلب عرض سعر",
		Sender:    "وزارة المالية",
		Recipient: "إدارة المشتريات",
	}
}

type fixture struct {
	registrar *Registrar
	sink      *audit.MemorySink
	logs      *observer.ObservedLogs
	ctx       context.Context
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	ids := id.NewGenerator(id.WithClock(clock))

	sink := &audit.MemorySink{}
	recorder, err := audit.NewRecorder(sink, ids, 0)
	require.NoError(t, err)
	t.Cleanup(recorder.Close)

	codes := pkgnumerator.New(ids, numerator.Config{Location: riyadh}, pkgnumerator.WithClock(clock))

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), logger.FromZap(zap.New(core)))
	ctx = appctx.WithActor(ctx, &appctx.Actor{UserID: "clerk-7", CompanyID: "co-1"})

	return &fixture{
		registrar: NewRegistrar(ids, codes, recorder, WithLocation(riyadh), WithClock(clock)),
		sink:      sink,
		logs:      logs,
		ctx:       ctx,
		now:       now,
	}
}

func TestRegister_Defaults(t *testing.T) {
	f := newFixture(t)

	doc, err := f.registrar.Register(f.ctx, "co-1", validInput())
	require.NoError(t, err)

	assert.NoError(t, id.Validate(doc.ID.String()))
	assert.True(t, f.now.Equal(id.Time(doc.ID)))
	assert.Regexp(t, `^IN250314-[0-9A-F]{8}$`, doc.Code)
	assert.Equal(t, doc.Code, doc.InternalRef)
	assert.Equal(t, StatusPending, doc.Status)
	assert.Equal(t, SecurityPublic, doc.Security)
	assert.Equal(t, PriorityNormal, doc.Priority)
	assert.Equal(t, "co-1", doc.CompanyID)
	assert.Equal(t, "clerk-7", doc.CreatedBy)
	assert.True(t, f.now.Equal(doc.Date))
	assert.Equal(t, 1, doc.Version)
}

func TestRegister_Outgoing(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.Type = TypeOutgoing
	in.Priority = PriorityImmediate

	doc, err := f.registrar.Register(f.ctx, "co-1", in)
	require.NoError(t, err)
	assert.Regexp(t, `^OUT250314-[0-9A-F]{8}$`, doc.Code)
	assert.Equal(t, PriorityImmediate, doc.Priority)
}

func TestRegister_DocDate(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.DocDate = "2025-02-01"

	doc, err := f.registrar.Register(f.ctx, "co-1", in)
	require.NoError(t, err)

	assert.Equal(t, 2025, doc.Date.Year())
	assert.Equal(t, time.February, doc.Date.Month())
	assert.Equal(t, 1, doc.Date.Day())
	assert.Equal(t, riyadh, doc.Date.Location())
}

func TestRegister_InvalidDocDate(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.DocDate = "yesterday-ish"

	_, err := f.registrar.Register(f.ctx, "co-1", in)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegister_WritesAuditAndLog(t *testing.T) {
	f := newFixture(t)

	doc, err := f.registrar.Register(f.ctx, "co-1", validInput())
	require.NoError(t, err)

	entries := f.sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionCreateCorrespondence, entries[0].Action)
	assert.Equal(t, doc.ID, entries[0].EntityID)
	assert.Equal(t, "clerk-7", entries[0].UserID)
	assert.Contains(t, string(entries[0].Changes), doc.Code)

	logged := f.logs.FilterMessage("correspondence registered").All()
	require.Len(t, logged, 1)
	assert.Equal(t, doc.Code, logged[0].ContextMap()["code"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"missing title", func(in *CreateInput) { in.Title = "" }, "title"},
		{"missing sender", func(in *CreateInput) { in.Sender = "" }, "sender"},
		{"missing recipient", func(in *CreateInput) { in.Recipient = "" }, "recipient"},
		{"unknown type", func(in *CreateInput) { in.Type = "INTERNAL" }, "type"},
		{"unknown priority", func(in *CreateInput) { in.Priority = "LOW" }, "priority"},
		{"unknown security", func(in *CreateInput) { in.Security = "SECRET" }, "security"},
		{"negative attachments", func(in *CreateInput) { in.AttachmentCount = -1 }, "attachmentCount"},
		{"blank tag", func(in *CreateInput) { in.Tags = []string{"عقود", ""} }, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := f.registrar.Register(f.ctx, "co-1", in)
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Contains(t, appErr.Details, tt.field)
		})
	}

	assert.Empty(t, f.sink.Entries())
}

func TestRegister_MissingCompany(t *testing.T) {
	f := newFixture(t)

	_, err := f.registrar.Register(f.ctx, "", validInput())
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegister_CodeGeneratorFailure(t *testing.T) {
	boom := errors.New("clock skew")
	gen := &numerator.MockGenerator{
		NextCodeFunc: func(context.Context, numerator.Direction) (string, error) { return "", boom },
	}
	r := NewRegistrar(id.NewGenerator(), gen, nil)

	_, err := r.Register(context.Background(), "co-1", validInput())
	assert.ErrorIs(t, err, boom)
}

func TestRegister_WithMockCode(t *testing.T) {
	r := NewRegistrar(id.NewGenerator(), &numerator.MockGenerator{}, nil)

	doc, err := r.Register(context.Background(), "co-1", validInput())
	require.NoError(t, err)
	assert.Equal(t, "IN260101-00000001", doc.Code)
}

func TestRegister_MismatchedCode(t *testing.T) {
	gen := &numerator.MockGenerator{
		NextCodeFunc: func(context.Context, numerator.Direction) (string, error) { return "OUT260101-00000001", nil },
	}
	r := NewRegistrar(id.NewGenerator(), gen, nil)

	_, err := r.Register(context.Background(), "co-1", validInput())
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestPriority_Label(t *testing.T) {
	assert.Equal(t, "عادي", PriorityNormal.Label())
	assert.Equal(t, "مهم", PriorityHigh.Label())
	assert.Equal(t, "عاجل", PriorityImmediate.Label())
	assert.Equal(t, "LOW", Priority("LOW").Label())
}
