package entity

import (
	"context"
	"time"

	"archivx/internal/core/apperror"
	"archivx/internal/core/id"
)

// Document is the base type for registered correspondence.
type Document struct {
	BaseEntity

	// Code is the business code printed on receipts and barcodes
	Code string `json:"barcodeId"`

	// Date is the business date of the document
	Date time.Time `json:"docDate"`

	// CompanyID is the owning company
	CompanyID string `json:"companyId"`
}

// NewDocument creates a new Document.
func NewDocument(v id.ID, code, companyID string, at time.Time) Document {
	return Document{
		BaseEntity: NewBaseEntity(v, at),
		Code:       code,
		Date:       at,
		CompanyID:  companyID,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if id.IsNil(d.ID) {
		return apperror.NewValidation("id is required").
			WithDetail("field", "id")
	}

	if d.Code == "" {
		return apperror.NewValidation("business code is required").
			WithDetail("field", "barcodeId")
	}

	if d.CompanyID == "" {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}

	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "docDate")
	}

	return nil
}
