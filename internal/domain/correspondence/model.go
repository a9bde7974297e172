// Package correspondence provides the registry record for incoming and outgoing
// documents and the flow that registers them.
package correspondence

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"archivx/internal/core/apperror"
	"archivx/internal/core/entity"
	"archivx/internal/core/numerator"
)

// Type is the flow of a document.
type Type string

const (
	TypeIncoming Type = "INCOMING"
	TypeOutgoing Type = "OUTGOING"
)

// Direction returns the business code tag for the type.
func (t Type) Direction() numerator.Direction {
	if t == TypeOutgoing {
		return numerator.DirectionOutgoing
	}
	return numerator.DirectionIncoming
}

// Status is the processing state of a record.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusArchived  Status = "ARCHIVED"
	StatusCompleted Status = "COMPLETED"
	StatusUrgent    Status = "URGENT"
)

// SecurityLevel restricts who may see a record.
type SecurityLevel string

const (
	SecurityPublic       SecurityLevel = "PUBLIC"
	SecurityConfidential SecurityLevel = "CONFIDENTIAL"
	SecurityTopSecret    SecurityLevel = "TOP_SECRET"
)

// Priority is the handling urgency of a record.
type Priority string

const (
	PriorityNormal    Priority = "NORMAL"
	PriorityHigh      Priority = "HIGH"
	PriorityImmediate Priority = "IMMEDIATE"
)

// Label returns the Arabic label printed on receipts.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "مهم"
	case PriorityImmediate:
		return "عاجل"
	case PriorityNormal:
		return "عادي"
	}
	return string(p)
}

// Correspondence is a registered incoming or outgoing document.
type Correspondence struct {
	entity.Document

	Type             Type          `json:"type"`
	Title            string        `json:"title"`
	Sender           string        `json:"sender"`
	Recipient        string        `json:"recipient"`
	ReferenceNumber  string        `json:"referenceNumber,omitempty"`
	InternalRef      string        `json:"internalRef"`
	Description      string        `json:"description,omitempty"`
	Status           Status        `json:"status"`
	Security         SecurityLevel `json:"security"`
	Priority         Priority      `json:"priority"`
	Category         string        `json:"category,omitempty"`
	PhysicalLocation string        `json:"physicalLocation,omitempty"`
	AttachmentCount  int           `json:"attachmentCount"`
	Signatory        string        `json:"signatory,omitempty"`
	Tags             []string      `json:"tags,omitempty"`
}

// Validate implements entity.Validatable.
func (c *Correspondence) Validate(ctx context.Context) error {
	if err := c.Document.Validate(ctx); err != nil {
		return err
	}

	if c.Type != TypeIncoming && c.Type != TypeOutgoing {
		return apperror.NewValidation("unknown correspondence type").
			WithDetail("field", "type").
			WithDetail("value", string(c.Type))
	}

	if c.Type.Direction() != directionOfCode(c.Code) {
		return apperror.NewValidation("business code does not match type").
			WithDetail("field", "barcodeId")
	}

	return nil
}

func directionOfCode(code string) numerator.Direction {
	if len(code) >= 3 && code[:3] == "OUT" {
		return numerator.DirectionOutgoing
	}
	return numerator.DirectionIncoming
}

// Company is the organization that issues receipts.
type Company struct {
	ID      string `json:"id" hcl:"id,optional"`
	NameAr  string `json:"nameAr" hcl:"name_ar"`
	NameEn  string `json:"nameEn" hcl:"name_en,optional"`
	LogoURL string `json:"logoUrl,omitempty" hcl:"logo_url,optional"`
}

// Validate checks that the company can be printed on a receipt.
func (c Company) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.NameAr, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&c.NameEn, validation.RuneLength(0, 200)),
		validation.Field(&c.LogoURL, is.URL),
	)
}

var _ entity.Validatable = (*Correspondence)(nil)
