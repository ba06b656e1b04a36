package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/api/middleware"
	"github.com/pedilo/pedilo-backend/api/responses"
	"github.com/pedilo/pedilo-backend/api/validators"
	catalogsvc "github.com/pedilo/pedilo-backend/internal/catalog"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/logger"
)

// ProductList pages through a storefront's catalog.
func ProductList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		filters := catalogsvc.ListFilters{
			Destacados:  queryBool(r, "destacados"),
			SoloEnStock: queryBool(r, "en_stock"),
		}
		if categoria := r.URL.Query().Get("categoria"); categoria != "" {
			filters.Categoria = &categoria
		}

		result, err := svc.ListProducts(r.Context(), businessID, paginationParams(r), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ProductDetail returns one catalog entry with its topping groups.
func ProductDetail(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		dto, err := svc.GetProduct(r.Context(), businessID, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type toppingOptionRequest struct {
	Nombre              string `json:"nombre" validate:"required"`
	PrecioExtraCentavos *int64 `json:"precio_extra_centavos,omitempty" validate:"omitempty,min=0"`
	PrecioCentavos      *int64 `json:"precio_centavos,omitempty" validate:"omitempty,min=0"`
}

type toppingGroupRequest struct {
	Nombre         string                 `json:"nombre" validate:"required"`
	MinSelecciones int                    `json:"min_selecciones" validate:"min=0"`
	MaxSelecciones int                    `json:"max_selecciones" validate:"min=0"`
	Options        []toppingOptionRequest `json:"options" validate:"required,dive"`
}

type createProductRequest struct {
	Nombre                  string                `json:"nombre" validate:"required"`
	Descripcion             *string               `json:"descripcion,omitempty"`
	Categoria               *string               `json:"categoria,omitempty"`
	ImagenURL               *string               `json:"imagen_url,omitempty"`
	Unidad                  string                `json:"unidad" validate:"required"`
	PrecioCentavos          int64                 `json:"precio_centavos" validate:"min=0"`
	PrecioMayoristaCentavos *int64                `json:"precio_mayorista_centavos,omitempty" validate:"omitempty,min=0"`
	CantidadMayorista       *int                  `json:"cantidad_mayorista,omitempty" validate:"omitempty,min=1"`
	CantidadMinima          int                   `json:"cantidad_minima" validate:"omitempty,min=1"`
	EnStock                 *bool                 `json:"en_stock,omitempty"`
	StockDisponible         *int                  `json:"stock_disponible,omitempty" validate:"omitempty,min=0"`
	EsDestacado             bool                  `json:"es_destacado"`
	Tags                    []string              `json:"tags,omitempty"`
	ToppingGroups           []toppingGroupRequest `json:"topping_groups,omitempty" validate:"omitempty,dive"`
}

func (r createProductRequest) toCreateInput() (catalogsvc.CreateProductInput, error) {
	unidad := enums.ProductUnit(r.Unidad)
	if !unidad.IsValid() {
		return catalogsvc.CreateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid unidad")
	}

	return catalogsvc.CreateProductInput{
		Nombre:                  r.Nombre,
		Descripcion:             r.Descripcion,
		Categoria:               r.Categoria,
		ImagenURL:               r.ImagenURL,
		Unidad:                  unidad,
		PrecioCentavos:          r.PrecioCentavos,
		PrecioMayoristaCentavos: r.PrecioMayoristaCentavos,
		CantidadMayorista:       r.CantidadMayorista,
		CantidadMinima:          r.CantidadMinima,
		EnStock:                 r.EnStock,
		StockDisponible:         r.StockDisponible,
		EsDestacado:             r.EsDestacado,
		Tags:                    r.Tags,
		ToppingGroups:           toGroupInputs(r.ToppingGroups),
	}, nil
}

type updateProductRequest struct {
	Nombre                  *string                `json:"nombre,omitempty"`
	Descripcion             *string                `json:"descripcion,omitempty"`
	Categoria               *string                `json:"categoria,omitempty"`
	ImagenURL               *string                `json:"imagen_url,omitempty"`
	Unidad                  *string                `json:"unidad,omitempty"`
	PrecioCentavos          *int64                 `json:"precio_centavos,omitempty" validate:"omitempty,min=0"`
	PrecioMayoristaCentavos *int64                 `json:"precio_mayorista_centavos,omitempty" validate:"omitempty,min=0"`
	CantidadMayorista       *int                   `json:"cantidad_mayorista,omitempty" validate:"omitempty,min=1"`
	CantidadMinima          *int                   `json:"cantidad_minima,omitempty" validate:"omitempty,min=1"`
	EnStock                 *bool                  `json:"en_stock,omitempty"`
	StockDisponible         *int                   `json:"stock_disponible,omitempty" validate:"omitempty,min=0"`
	EsDestacado             *bool                  `json:"es_destacado,omitempty"`
	Tags                    *[]string              `json:"tags,omitempty"`
	ToppingGroups           *[]toppingGroupRequest `json:"topping_groups,omitempty"`
}

func (r updateProductRequest) toUpdateInput() (catalogsvc.UpdateProductInput, error) {
	input := catalogsvc.UpdateProductInput{
		Nombre:                  r.Nombre,
		Descripcion:             r.Descripcion,
		Categoria:               r.Categoria,
		ImagenURL:               r.ImagenURL,
		PrecioCentavos:          r.PrecioCentavos,
		PrecioMayoristaCentavos: r.PrecioMayoristaCentavos,
		CantidadMayorista:       r.CantidadMayorista,
		CantidadMinima:          r.CantidadMinima,
		EnStock:                 r.EnStock,
		StockDisponible:         r.StockDisponible,
		EsDestacado:             r.EsDestacado,
		Tags:                    r.Tags,
	}
	if r.Unidad != nil {
		unidad := enums.ProductUnit(*r.Unidad)
		if !unidad.IsValid() {
			return catalogsvc.UpdateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid unidad")
		}
		input.Unidad = &unidad
	}
	if r.ToppingGroups != nil {
		groups := toGroupInputs(*r.ToppingGroups)
		input.ToppingGroups = &groups
	}
	return input, nil
}

func toGroupInputs(requests []toppingGroupRequest) []catalogsvc.ToppingGroupInput {
	groups := make([]catalogsvc.ToppingGroupInput, 0, len(requests))
	for _, group := range requests {
		input := catalogsvc.ToppingGroupInput{
			Nombre:         group.Nombre,
			MinSelecciones: group.MinSelecciones,
			MaxSelecciones: group.MaxSelecciones,
			Options:        make([]catalogsvc.ToppingOptionInput, 0, len(group.Options)),
		}
		for _, option := range group.Options {
			input.Options = append(input.Options, catalogsvc.ToppingOptionInput{
				Nombre:              option.Nombre,
				PrecioExtraCentavos: option.PrecioExtraCentavos,
				PrecioCentavos:      option.PrecioCentavos,
			})
		}
		groups = append(groups, input)
	}
	return groups
}

// VendorCreateProduct handles catalog entry creation from the dashboard.
func VendorCreateProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.CreateProduct(r.Context(), businessID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// VendorUpdateProduct applies a partial catalog edit.
func VendorUpdateProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateProduct(r.Context(), businessID, productID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// VendorDeleteProduct removes a catalog entry.
func VendorDeleteProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		businessID := middleware.BusinessIDFromContext(r.Context())

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), businessID, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
