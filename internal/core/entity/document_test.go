package entity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivx/internal/core/apperror"
	"archivx/internal/core/id"
)

func TestNewDocument(t *testing.T) {
	at := time.Date(2025, 5, 1, 9, 0, 0, 0, time.FixedZone("AST", 3*3600))
	v := id.New()

	doc := NewDocument(v, "IN250501-0A0B0C0D", "company-1", at)

	assert.Equal(t, v, doc.ID)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, time.UTC, doc.CreatedAt.Location())
	assert.True(t, at.Equal(doc.Date))
	assert.NoError(t, doc.Validate(context.Background()))

	doc.Touch(at.Add(time.Hour), "clerk")
	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, "clerk", doc.UpdatedBy)
}

func TestDocument_Validate(t *testing.T) {
	at := time.Now()
	tests := []struct {
		name  string
		doc   Document
		field string
	}{
		{"missing id", NewDocument(id.Nil(), "IN250501-0A0B0C0D", "c", at), "id"},
		{"missing code", NewDocument(id.New(), "", "c", at), "barcodeId"},
		{"missing company", NewDocument(id.New(), "IN250501-0A0B0C0D", "", at), "companyId"},
		{"missing date", NewDocument(id.New(), "IN250501-0A0B0C0D", "c", time.Time{}), "docDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate(context.Background())
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}
