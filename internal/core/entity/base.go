package entity

import (
	"context"
	"time"

	"archivx/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without any store access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseEntity contains common fields for all registry records.
type BaseEntity struct {
	// ID is the primary key (sortable UUIDv7 layout)
	ID id.ID `json:"id"`

	// Version is incremented on each update
	Version int `json:"version"`

	// Audit fields
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// NewBaseEntity creates a BaseEntity with the given ID stamped at the given time.
func NewBaseEntity(v id.ID, at time.Time) BaseEntity {
	at = at.UTC()
	return BaseEntity{
		ID:        v,
		Version:   1,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// Touch updates the UpdatedAt timestamp and increments version.
func (b *BaseEntity) Touch(at time.Time, by string) {
	b.UpdatedAt = at.UTC()
	b.UpdatedBy = by
	b.Version++
}

// SetCreatedBy records the creating user on both audit fields.
func (b *BaseEntity) SetCreatedBy(userID string) {
	b.CreatedBy = userID
	b.UpdatedBy = userID
}
