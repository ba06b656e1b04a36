package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/enums"
)

// Business represents the canonical tenant model. Each business owns a
// public storefront addressed by slug.
type Business struct {
	ID                   uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug                 string             `gorm:"column:slug;not null;uniqueIndex"`
	Nombre               string             `gorm:"column:nombre;not null"`
	Descripcion          *string            `gorm:"column:descripcion"`
	Telefono             *string            `gorm:"column:telefono"`
	Direccion            *string            `gorm:"column:direccion"`
	LogoURL              *string            `gorm:"column:logo_url"`
	TipoNegocio          enums.BusinessType `gorm:"column:tipo_negocio;type:business_type;not null;default:'minorista'"`
	AceptaPedidos        bool               `gorm:"column:acepta_pedidos;not null;default:true"`
	PedidoMinimoCentavos int64              `gorm:"column:pedido_minimo_centavos;not null;default:0"`
	Products             []Product          `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
