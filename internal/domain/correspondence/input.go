package correspondence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"archivx/internal/core/apperror"
)

// CreateInput is the data a clerk supplies to register a document.
type CreateInput struct {
	Type             Type          `json:"type"`
	Title            string        `json:"title"`
	Sender           string        `json:"sender"`
	Recipient        string        `json:"recipient"`
	ReferenceNumber  string        `json:"referenceNumber,omitempty"`
	Description      string        `json:"description,omitempty"`
	Security         SecurityLevel `json:"security,omitempty"`
	Priority         Priority      `json:"priority,omitempty"`
	Category         string        `json:"category,omitempty"`
	PhysicalLocation string        `json:"physicalLocation,omitempty"`
	AttachmentCount  int           `json:"attachmentCount,omitempty"`
	Signatory        string        `json:"signatory,omitempty"`
	Tags             []string      `json:"tags,omitempty"`

	// DocDate accepts any common date layout ("2025-03-14", "14/03/2025",
	// RFC 3339, ...). Empty means the registration time.
	DocDate string `json:"docDate,omitempty"`
}

// Validate checks the input and returns a VALIDATION_ERROR with one detail per
// offending field.
func (in *CreateInput) Validate() error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Type, validation.Required, validation.In(TypeIncoming, TypeOutgoing)),
		validation.Field(&in.Title, validation.Required, validation.RuneLength(1, 500)),
		validation.Field(&in.Sender, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&in.Recipient, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&in.ReferenceNumber, validation.RuneLength(0, 100)),
		validation.Field(&in.Security, validation.In(SecurityPublic, SecurityConfidential, SecurityTopSecret)),
		validation.Field(&in.Priority, validation.In(PriorityNormal, PriorityHigh, PriorityImmediate)),
		validation.Field(&in.AttachmentCount, validation.Min(0)),
		validation.Field(&in.Tags, validation.Each(validation.Required, validation.RuneLength(1, 50))),
	)
	if err == nil {
		return nil
	}
	return toAppError(err)
}

// ParseDocDate interprets DocDate in loc. An empty DocDate yields fallback.
// Numeric slash dates are read day first, so 03/04/2025 is the 3rd of April.
func (in *CreateInput) ParseDocDate(loc *time.Location, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(in.DocDate)
	if raw == "" {
		return fallback, nil
	}
	t, err := dateparse.ParseIn(raw, loc, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid document date").
			WithDetail("docDate", raw).
			WithCause(err)
	}
	return t, nil
}

func toAppError(err error) error {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		appErr := apperror.NewValidation("invalid correspondence")
		for field, fe := range fieldErrs {
			appErr.WithDetail(field, fe.Error())
		}
		return appErr
	}
	return apperror.NewInternal(fmt.Errorf("validate correspondence: %w", err))
}
