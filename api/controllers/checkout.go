package controllers

import (
	"net/http"

	"github.com/pedilo/pedilo-backend/api/middleware"
	"github.com/pedilo/pedilo-backend/api/responses"
	"github.com/pedilo/pedilo-backend/api/validators"
	cartsvc "github.com/pedilo/pedilo-backend/internal/cart"
	orderssvc "github.com/pedilo/pedilo-backend/internal/orders"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/logger"
)

// CheckoutDecision returns the advisory gate decision for the current cart.
func CheckoutDecision(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		decision, err := svc.CheckoutDecision(r.Context(), middleware.SlugFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, decision)
	}
}

type submitOrderRequest struct {
	NombreCliente    string  `json:"nombre_cliente" validate:"required"`
	TelefonoCliente  string  `json:"telefono_cliente" validate:"required"`
	DireccionEntrega *string `json:"direccion_entrega,omitempty"`
	Notas            *string `json:"notas,omitempty"`
}

// CheckoutSubmit turns the cart into an order. The gate re-runs
// authoritatively inside the order service.
func CheckoutSubmit(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload submitOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Submit(r.Context(), middleware.SlugFromContext(r.Context()), orderssvc.SubmitOrderInput{
			NombreCliente:    payload.NombreCliente,
			TelefonoCliente:  payload.TelefonoCliente,
			DireccionEntrega: payload.DireccionEntrega,
			Notas:            payload.Notas,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}
