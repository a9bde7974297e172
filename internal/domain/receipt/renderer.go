package receipt

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"archivx/internal/core/apperror"
	"archivx/internal/core/id"
	"archivx/internal/domain/audit"
	"archivx/internal/domain/correspondence"
	"archivx/pkg/logger"
)

var tracer = otel.Tracer("archivx/receipt")

// Canvas draws a single receipt page and serializes it.
type Canvas interface {
	DrawText(b Block)
	DrawImage(name string, png []byte, x, y, width, height float64)
	Finish(w io.Writer) error
}

// CanvasFactory returns a blank page for each receipt.
type CanvasFactory func() (Canvas, error)

// BarcodeEncoder renders a code128 symbol as PNG.
type BarcodeEncoder interface {
	PNG(value string) ([]byte, error)
}

// AuditRecorder receives one PRINT_RECEIPT entry per rendered receipt.
type AuditRecorder interface {
	RecordChange(ctx context.Context, action audit.Action, entityType string, entityID id.ID, changes any) error
}

// Renderer draws receipts through a Canvas.
type Renderer struct {
	newCanvas CanvasFactory
	barcodes  BarcodeEncoder
	recorder  AuditRecorder
	opts      Options
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRecorder audits every rendered receipt.
func WithRecorder(r AuditRecorder) RendererOption {
	return func(rd *Renderer) { rd.recorder = r }
}

// NewRenderer creates a renderer.
func NewRenderer(newCanvas CanvasFactory, barcodes BarcodeEncoder, opts Options, ropts ...RendererOption) *Renderer {
	r := &Renderer{
		newCanvas: newCanvas,
		barcodes:  barcodes,
		opts:      opts.withDefaults(),
	}
	for _, o := range ropts {
		o(r)
	}
	return r
}

// Render writes the receipt of doc issued by company to w.
func (r *Renderer) Render(ctx context.Context, doc *correspondence.Correspondence, company correspondence.Company, w io.Writer) (err error) {
	ctx, span := tracer.Start(ctx, "receipt.Render")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("correspondence.code", doc.Code))

	if doc.Code == "" {
		return apperror.NewValidation("business code is required").
			WithDetail("field", "barcodeId")
	}

	layout := Build(doc, company, r.opts)

	canvas, err := r.newCanvas()
	if err != nil {
		return apperror.NewRenderFailed("canvas", err)
	}

	symbol, err := r.barcodes.PNG(layout.Barcode.Value)
	if err != nil {
		return apperror.NewRenderFailed("barcode", err)
	}
	b := layout.Barcode
	canvas.DrawImage("barcode-"+b.Value, symbol, b.X, b.Y, b.Width, b.Height)

	for _, block := range layout.Blocks {
		canvas.DrawText(block)
	}

	if err := canvas.Finish(w); err != nil {
		return apperror.NewRenderFailed("pdf", err)
	}

	if r.recorder != nil {
		if err := r.recorder.RecordChange(ctx, audit.ActionPrintReceipt, "correspondence", doc.ID, map[string]string{
			"barcodeId": doc.Code,
		}); err != nil {
			logger.Warn(ctx, "receipt audit failed", "code", doc.Code, "error", err)
		}
	}

	logger.Debug(ctx, "receipt rendered", "code", doc.Code)
	return nil
}
