package business

import (
	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/enums"
)

// BusinessDTO is the public storefront profile returned to clients.
type BusinessDTO struct {
	ID                   uuid.UUID          `json:"id"`
	Slug                 string             `json:"slug"`
	Nombre               string             `json:"nombre"`
	Descripcion          *string            `json:"descripcion,omitempty"`
	Telefono             *string            `json:"telefono,omitempty"`
	Direccion            *string            `json:"direccion,omitempty"`
	LogoURL              *string            `json:"logo_url,omitempty"`
	TipoNegocio          enums.BusinessType `json:"tipo_negocio"`
	AceptaPedidos        bool               `json:"acepta_pedidos"`
	PedidoMinimoCentavos int64              `json:"pedido_minimo_centavos"`
}

// PricingContext is the slice of business state the cart engine needs to
// price lines and gate checkout.
type PricingContext struct {
	BusinessID           uuid.UUID
	Slug                 string
	TipoNegocio          enums.BusinessType
	AceptaPedidos        bool
	PedidoMinimoCentavos int64
}

// UpdateBusinessInput captures the mutable storefront profile fields.
type UpdateBusinessInput struct {
	Nombre               *string
	Descripcion          *string
	Telefono             *string
	Direccion            *string
	LogoURL              *string
	TipoNegocio          *enums.BusinessType
	PedidoMinimoCentavos *int64
}

func toDTO(row *models.Business) *BusinessDTO {
	return &BusinessDTO{
		ID:                   row.ID,
		Slug:                 row.Slug,
		Nombre:               row.Nombre,
		Descripcion:          row.Descripcion,
		Telefono:             row.Telefono,
		Direccion:            row.Direccion,
		LogoURL:              row.LogoURL,
		TipoNegocio:          row.TipoNegocio,
		AceptaPedidos:        row.AceptaPedidos,
		PedidoMinimoCentavos: row.PedidoMinimoCentavos,
	}
}

func toPricingContext(row *models.Business) *PricingContext {
	return &PricingContext{
		BusinessID:           row.ID,
		Slug:                 row.Slug,
		TipoNegocio:          row.TipoNegocio,
		AceptaPedidos:        row.AceptaPedidos,
		PedidoMinimoCentavos: row.PedidoMinimoCentavos,
	}
}
