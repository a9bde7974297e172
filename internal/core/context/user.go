// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// Actor identifies who performs an operation: the registering clerk and the company
// the record belongs to. It is supplied by the calling layer; the core does not
// authenticate it.
type Actor struct {
	UserID    string
	Name      string
	CompanyID string
}

type actorContextKey struct{}

// WithActor adds Actor to context.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// GetActor returns Actor from context.
func GetActor(ctx context.Context) *Actor {
	if v, ok := ctx.Value(actorContextKey{}).(*Actor); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if a := GetActor(ctx); a != nil {
		return a.UserID
	}
	return ""
}

// GetCompanyID returns company ID from context or empty string.
func GetCompanyID(ctx context.Context) string {
	if a := GetActor(ctx); a != nil {
		return a.CompanyID
	}
	return ""
}
