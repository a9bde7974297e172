package correspondence

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"archivx/internal/core/apperror"
	"archivx/internal/core/entity"
	"archivx/internal/core/id"
	"archivx/internal/core/numerator"
	"archivx/internal/domain/audit"
	"archivx/pkg/logger"
)

var tracer = otel.Tracer("archivx/correspondence")

// IDGenerator mints record identifiers. *id.Generator satisfies it.
type IDGenerator interface {
	New() (id.ID, error)
}

// AuditRecorder receives one entry per registration. *audit.Recorder satisfies it.
type AuditRecorder interface {
	RecordChange(ctx context.Context, action audit.Action, entityType string, entityID id.ID, changes any) error
}

// Registrar validates input and turns it into a registered record with a
// sortable ID and a business code.
type Registrar struct {
	ids      IDGenerator
	codeGen  numerator.Generator
	recorder AuditRecorder
	location *time.Location
	now      func() time.Time
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithLocation sets the timezone used to read document dates.
func WithLocation(loc *time.Location) Option {
	return func(r *Registrar) { r.location = loc }
}

// WithClock sets the registration time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registrar) { r.now = now }
}

// NewRegistrar creates a registrar. recorder may be nil to skip auditing.
func NewRegistrar(ids IDGenerator, codeGen numerator.Generator, recorder AuditRecorder, opts ...Option) *Registrar {
	r := &Registrar{
		ids:      ids,
		codeGen:  codeGen,
		recorder: recorder,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register validates in and produces a new record for companyID.
func (r *Registrar) Register(ctx context.Context, companyID string, in CreateInput) (_ *Correspondence, err error) {
	ctx, span := tracer.Start(ctx, "correspondence.Register")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := in.Validate(); err != nil {
		return nil, err
	}
	if companyID == "" {
		return nil, apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}

	now := r.now()
	docDate, err := in.ParseDocDate(r.location, now)
	if err != nil {
		return nil, err
	}

	recordID, err := r.ids.New()
	if err != nil {
		return nil, fmt.Errorf("record id: %w", err)
	}

	code, err := r.codeGen.NextCode(ctx, in.Type.Direction())
	if err != nil {
		return nil, fmt.Errorf("business code: %w", err)
	}
	span.SetAttributes(
		attribute.String("correspondence.id", recordID.String()),
		attribute.String("correspondence.code", code),
	)

	doc := &Correspondence{
		Document:         entity.NewDocument(recordID, code, companyID, now),
		Type:             in.Type,
		Title:            in.Title,
		Sender:           in.Sender,
		Recipient:        in.Recipient,
		ReferenceNumber:  in.ReferenceNumber,
		InternalRef:      code,
		Description:      in.Description,
		Status:           StatusPending,
		Security:         in.Security,
		Priority:         in.Priority,
		Category:         in.Category,
		PhysicalLocation: in.PhysicalLocation,
		AttachmentCount:  in.AttachmentCount,
		Signatory:        in.Signatory,
		Tags:             in.Tags,
	}
	doc.Date = docDate
	if doc.Security == "" {
		doc.Security = SecurityPublic
	}
	if doc.Priority == "" {
		doc.Priority = PriorityNormal
	}
	audit.EnrichCreatedBy(ctx, doc)

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	if r.recorder != nil {
		if err := r.recorder.RecordChange(ctx, audit.ActionCreateCorrespondence, "correspondence", doc.ID, doc); err != nil {
			return nil, fmt.Errorf("audit: %w", err)
		}
	}

	logger.Info(ctx, "correspondence registered",
		"id", doc.ID.String(),
		"code", doc.Code,
		"type", string(doc.Type))

	return doc, nil
}
