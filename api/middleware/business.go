package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pedilo/pedilo-backend/api/responses"
	"github.com/pedilo/pedilo-backend/internal/business"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/logger"
)

type businessResolver interface {
	PricingContextBySlug(ctx context.Context, slug string) (*business.PricingContext, error)
}

// BusinessContext resolves the {slug} route param into a business and
// injects slug and business id into the request context. Unknown slugs
// fail the request here, before any handler runs.
func BusinessContext(resolver businessResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := strings.TrimSpace(chi.URLParam(r, "slug"))
			if slug == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
				return
			}

			pctx, err := resolver.PricingContextBySlug(r.Context(), slug)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithSlug(r.Context(), slug)
			ctx = WithBusinessID(ctx, pctx.BusinessID)
			if logg != nil {
				ctx = logg.WithSlug(ctx, slug)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
