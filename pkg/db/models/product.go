package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pedilo/pedilo-backend/pkg/enums"
)

// Product represents the canonical storefront listing. Prices are stored
// in centavos. Mayorista pricing only applies when both the wholesale
// price and the wholesale threshold are present.
type Product struct {
	ID                      uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BusinessID              uuid.UUID         `gorm:"column:business_id;type:uuid;not null"`
	Nombre                  string            `gorm:"column:nombre;not null"`
	Descripcion             *string           `gorm:"column:descripcion"`
	Categoria               *string           `gorm:"column:categoria"`
	ImagenURL               *string           `gorm:"column:imagen_url"`
	Unidad                  enums.ProductUnit `gorm:"column:unidad;type:product_unit;not null;default:'unidad'"`
	PrecioCentavos          int64             `gorm:"column:precio_centavos;not null"`
	PrecioMayoristaCentavos *int64            `gorm:"column:precio_mayorista_centavos"`
	CantidadMayorista       *int              `gorm:"column:cantidad_mayorista"`
	CantidadMinima          int               `gorm:"column:cantidad_minima;not null;default:1"`
	EnStock                 bool              `gorm:"column:en_stock;not null;default:true"`
	StockDisponible         *int              `gorm:"column:stock_disponible"`
	EsDestacado             bool              `gorm:"column:es_destacado;not null;default:false"`
	Tags                    pq.StringArray    `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	ToppingGroups           []ToppingGroup    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt               time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt               time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// HasToppings reports whether the product defines any topping groups.
func (p *Product) HasToppings() bool {
	return len(p.ToppingGroups) > 0
}
