package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/api/middleware"
	"github.com/pedilo/pedilo-backend/api/responses"
	"github.com/pedilo/pedilo-backend/api/validators"
	orderssvc "github.com/pedilo/pedilo-backend/internal/orders"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/logger"
)

// VendorOrderList pages through the business's orders, newest first.
func VendorOrderList(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		result, err := svc.List(r.Context(), businessID, paginationParams(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// VendorOrderDetail returns one order with its line items.
func VendorOrderDetail(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		dto, err := svc.Get(r.Context(), businessID, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// VendorOrderUpdateStatus transitions an order's status.
func VendorOrderUpdateStatus(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateStatus(r.Context(), businessID, orderID, enums.OrderStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
