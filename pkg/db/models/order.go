package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/enums"
)

// Order is the record produced when a cart clears the checkout gate.
// Line items carry price snapshots so later catalog edits never change
// what the customer agreed to pay.
type Order struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BusinessID       uuid.UUID         `gorm:"column:business_id;type:uuid;not null"`
	Status           enums.OrderStatus `gorm:"column:status;type:order_status;not null;default:'pendiente'"`
	NombreCliente    string            `gorm:"column:nombre_cliente;not null"`
	TelefonoCliente  string            `gorm:"column:telefono_cliente;not null"`
	DireccionEntrega *string           `gorm:"column:direccion_entrega"`
	Notas            *string           `gorm:"column:notas"`
	TotalCentavos    int64             `gorm:"column:total_centavos;not null"`
	Items            []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
