package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/api/middleware"
	"github.com/pedilo/pedilo-backend/api/responses"
	"github.com/pedilo/pedilo-backend/api/validators"
	cartsvc "github.com/pedilo/pedilo-backend/internal/cart"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/logger"
)

// CartFetch returns the current cart with priced lines and the advisory
// gate decision.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		view, err := svc.GetCart(r.Context(), middleware.SlugFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// CartAddItem adds one unit of a toppings-free product, merging into an
// existing line when one exists.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		view, err := svc.AddSimple(r.Context(), middleware.SlugFromContext(r.Context()), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type addWithToppingsRequest struct {
	ProductID string   `json:"product_id" validate:"required,uuid"`
	Cantidad  int      `json:"cantidad" validate:"required,min=1"`
	OptionIDs []string `json:"option_ids" validate:"omitempty,dive,uuid"`
}

// CartAddWithToppings adds a customized line. Customized lines never
// merge, so each call appends a fresh line.
func CartAddWithToppings(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addWithToppingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		optionIDs := make([]uuid.UUID, 0, len(payload.OptionIDs))
		for _, raw := range payload.OptionIDs {
			optionID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid option id"))
				return
			}
			optionIDs = append(optionIDs, optionID)
		}

		view, err := svc.AddWithToppings(r.Context(), middleware.SlugFromContext(r.Context()), cartsvc.AddWithToppingsInput{
			ProductID: productID,
			Cantidad:  payload.Cantidad,
			OptionIDs: optionIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartIncreaseLine bumps a line's quantity by one.
func CartIncreaseLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartLineMutation(svc, logg, func(r *http.Request, slug string, lineID uuid.UUID) (*cartsvc.CartView, error) {
		return svc.Increase(r.Context(), slug, lineID)
	})
}

// CartDecreaseLine lowers a line's quantity by one, removing the line
// when it sits at its floor.
func CartDecreaseLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return cartLineMutation(svc, logg, func(r *http.Request, slug string, lineID uuid.UUID) (*cartsvc.CartView, error) {
		return svc.Decrease(r.Context(), slug, lineID)
	})
}

func cartLineMutation(svc cartsvc.Service, logg *logger.Logger, fn func(*http.Request, string, uuid.UUID) (*cartsvc.CartView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line id"))
			return
		}

		view, err := fn(r, middleware.SlugFromContext(r.Context()), lineID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

type setQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Cantidad  *int   `json:"cantidad" validate:"required"`
}

// CartSetQuantity sets a toppings-free line to an absolute quantity.
// Zero removes the line; a missing line is created.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		view, err := svc.SetQuantity(r.Context(), middleware.SlugFromContext(r.Context()), productID, *payload.Cantidad)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartClear drops the whole cart snapshot for the storefront.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.Clear(r.Context(), middleware.SlugFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
