package catalog

import (
	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/enums"
)

// ProductDTO is the catalog entry returned to storefront clients.
type ProductDTO struct {
	ID                      uuid.UUID         `json:"id"`
	BusinessID              uuid.UUID         `json:"business_id"`
	Nombre                  string            `json:"nombre"`
	Descripcion             *string           `json:"descripcion,omitempty"`
	Categoria               *string           `json:"categoria,omitempty"`
	ImagenURL               *string           `json:"imagen_url,omitempty"`
	Unidad                  enums.ProductUnit `json:"unidad"`
	PrecioCentavos          int64             `json:"precio_centavos"`
	PrecioMayoristaCentavos *int64            `json:"precio_mayorista_centavos,omitempty"`
	CantidadMayorista       *int              `json:"cantidad_mayorista,omitempty"`
	CantidadMinima          int               `json:"cantidad_minima"`
	EnStock                 bool              `json:"en_stock"`
	StockDisponible         *int              `json:"stock_disponible,omitempty"`
	EsDestacado             bool              `json:"es_destacado"`
	Tags                    []string          `json:"tags,omitempty"`
	ToppingGroups           []ToppingGroupDTO `json:"topping_groups,omitempty"`
}

// ToppingGroupDTO is a topping group with its options.
type ToppingGroupDTO struct {
	ID             uuid.UUID          `json:"id"`
	Nombre         string             `json:"nombre"`
	MinSelecciones int                `json:"min_selecciones"`
	MaxSelecciones int                `json:"max_selecciones"`
	Options        []ToppingOptionDTO `json:"options"`
}

// ToppingOptionDTO is a selectable option inside a group.
type ToppingOptionDTO struct {
	ID                  uuid.UUID `json:"id"`
	Nombre              string    `json:"nombre"`
	PrecioExtraCentavos int64     `json:"precio_extra_centavos"`
}

// ProductListResult pairs a catalog page with its next cursor.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// CreateProductInput captures the payload for a new catalog entry.
type CreateProductInput struct {
	Nombre                  string
	Descripcion             *string
	Categoria               *string
	ImagenURL               *string
	Unidad                  enums.ProductUnit
	PrecioCentavos          int64
	PrecioMayoristaCentavos *int64
	CantidadMayorista       *int
	CantidadMinima          int
	EnStock                 *bool
	StockDisponible         *int
	EsDestacado             bool
	Tags                    []string
	ToppingGroups           []ToppingGroupInput
}

// UpdateProductInput captures the mutable catalog fields. Nil leaves a
// field untouched; ToppingGroups non-nil replaces the whole set.
type UpdateProductInput struct {
	Nombre                  *string
	Descripcion             *string
	Categoria               *string
	ImagenURL               *string
	Unidad                  *enums.ProductUnit
	PrecioCentavos          *int64
	PrecioMayoristaCentavos *int64
	CantidadMayorista       *int
	CantidadMinima          *int
	EnStock                 *bool
	StockDisponible         *int
	EsDestacado             *bool
	Tags                    *[]string
	ToppingGroups           *[]ToppingGroupInput
}

// ToppingGroupInput defines a group and its options at ingestion.
type ToppingGroupInput struct {
	Nombre         string
	MinSelecciones int
	MaxSelecciones int
	Options        []ToppingOptionInput
}

// ToppingOptionInput accepts the legacy surcharge shape: precio_extra
// preferred, precio as fallback. The fallback collapses into one column
// here, at the catalog boundary, and nowhere else.
type ToppingOptionInput struct {
	Nombre              string
	PrecioExtraCentavos *int64
	PrecioCentavos      *int64
}

func (i ToppingOptionInput) surcharge() int64 {
	if i.PrecioExtraCentavos != nil {
		return *i.PrecioExtraCentavos
	}
	if i.PrecioCentavos != nil {
		return *i.PrecioCentavos
	}
	return 0
}

func toProductDTO(row *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:                      row.ID,
		BusinessID:              row.BusinessID,
		Nombre:                  row.Nombre,
		Descripcion:             row.Descripcion,
		Categoria:               row.Categoria,
		ImagenURL:               row.ImagenURL,
		Unidad:                  row.Unidad,
		PrecioCentavos:          row.PrecioCentavos,
		PrecioMayoristaCentavos: row.PrecioMayoristaCentavos,
		CantidadMayorista:       row.CantidadMayorista,
		CantidadMinima:          row.CantidadMinima,
		EnStock:                 row.EnStock,
		StockDisponible:         row.StockDisponible,
		EsDestacado:             row.EsDestacado,
		Tags:                    row.Tags,
	}
	for _, group := range row.ToppingGroups {
		groupDTO := ToppingGroupDTO{
			ID:             group.ID,
			Nombre:         group.Nombre,
			MinSelecciones: group.MinSelecciones,
			MaxSelecciones: group.MaxSelecciones,
			Options:        make([]ToppingOptionDTO, 0, len(group.Options)),
		}
		for _, option := range group.Options {
			groupDTO.Options = append(groupDTO.Options, ToppingOptionDTO{
				ID:                  option.ID,
				Nombre:              option.Nombre,
				PrecioExtraCentavos: option.PrecioExtraCentavos,
			})
		}
		dto.ToppingGroups = append(dto.ToppingGroups, groupDTO)
	}
	return dto
}
