package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ctxSlug       contextKey = "slug"
	ctxBusinessID contextKey = "business_id"
)

func SlugFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSlug).(string); ok {
		return v
	}
	return ""
}

func BusinessIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxBusinessID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// WithSlug injects the business slug into the context.
func WithSlug(ctx context.Context, slug string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSlug, slug)
}

// WithBusinessID injects the resolved business identifier into the context
// for downstream handlers.
func WithBusinessID(ctx context.Context, id uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxBusinessID, id)
}
