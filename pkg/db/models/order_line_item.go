package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/types"
)

// OrderLineItem captures the snapshot of each cart line at submission.
type OrderLineItem struct {
	ID                     uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID                uuid.UUID               `gorm:"column:order_id;type:uuid;not null"`
	ProductID              uuid.UUID               `gorm:"column:product_id;type:uuid;not null"`
	NombreProducto         string                  `gorm:"column:nombre_producto;not null"`
	Cantidad               int                     `gorm:"column:cantidad;not null"`
	PrecioUnitarioCentavos int64                   `gorm:"column:precio_unitario_centavos;not null"`
	TotalCentavos          int64                   `gorm:"column:total_centavos;not null"`
	Toppings               types.ToppingSelections `gorm:"column:toppings;type:jsonb;serializer:json"`
	CreatedAt              time.Time               `gorm:"column:created_at;autoCreateTime"`
}
