package controllers

import (
	"net/http"

	"github.com/pedilo/pedilo-backend/api/middleware"
	"github.com/pedilo/pedilo-backend/api/responses"
	"github.com/pedilo/pedilo-backend/api/validators"
	businesssvc "github.com/pedilo/pedilo-backend/internal/business"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/logger"
)

// BusinessProfile returns the public storefront profile for a slug.
func BusinessProfile(svc businesssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "business service unavailable"))
			return
		}

		dto, err := svc.GetBySlug(r.Context(), middleware.SlugFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type updateBusinessRequest struct {
	Nombre               *string `json:"nombre,omitempty"`
	Descripcion          *string `json:"descripcion,omitempty"`
	Telefono             *string `json:"telefono,omitempty"`
	Direccion            *string `json:"direccion,omitempty"`
	LogoURL              *string `json:"logo_url,omitempty"`
	TipoNegocio          *string `json:"tipo_negocio,omitempty"`
	PedidoMinimoCentavos *int64  `json:"pedido_minimo_centavos,omitempty" validate:"omitempty,min=0"`
}

func (r updateBusinessRequest) toInput() businesssvc.UpdateBusinessInput {
	input := businesssvc.UpdateBusinessInput{
		Nombre:               r.Nombre,
		Descripcion:          r.Descripcion,
		Telefono:             r.Telefono,
		Direccion:            r.Direccion,
		LogoURL:              r.LogoURL,
		PedidoMinimoCentavos: r.PedidoMinimoCentavos,
	}
	if r.TipoNegocio != nil {
		tipo := enums.BusinessType(*r.TipoNegocio)
		input.TipoNegocio = &tipo
	}
	return input
}

// VendorUpdateBusiness handles storefront profile edits from the dashboard.
func VendorUpdateBusiness(svc businesssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "business service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		var payload updateBusinessRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), businessID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type aceptaPedidosRequest struct {
	AceptaPedidos *bool `json:"acepta_pedidos" validate:"required"`
}

// VendorSetAceptaPedidos toggles whether the storefront accepts orders.
func VendorSetAceptaPedidos(svc businesssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "business service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		var payload aceptaPedidosRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.SetAceptaPedidos(r.Context(), businessID, *payload.AceptaPedidos)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
