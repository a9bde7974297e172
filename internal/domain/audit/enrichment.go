// Package audit records who did what to which registry record.
package audit

import (
	"context"

	appctx "archivx/internal/core/context"
)

// EnrichCreatedBy sets the creating user from the actor in context.
// If no actor is present, this is a no-op.
func EnrichCreatedBy(ctx context.Context, entity interface{ SetCreatedBy(string) }) {
	userID := appctx.GetUserID(ctx)
	if userID == "" {
		return
	}
	entity.SetCreatedBy(userID)
}
