package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/internal/cart"
	"github.com/pedilo/pedilo-backend/pkg/db/models"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	"github.com/pedilo/pedilo-backend/pkg/types"
)

// SubmitOrderInput captures the customer data sent with a checkout.
type SubmitOrderInput struct {
	NombreCliente    string
	TelefonoCliente  string
	DireccionEntrega *string
	Notas            *string
}

// OrderLineDTO is a priced line item snapshot within an order.
type OrderLineDTO struct {
	ID                     uuid.UUID               `json:"id"`
	ProductID              uuid.UUID               `json:"product_id"`
	NombreProducto         string                  `json:"nombre_producto"`
	Cantidad               int                     `json:"cantidad"`
	PrecioUnitarioCentavos int64                   `json:"precio_unitario_centavos"`
	PrecioUnitarioDisplay  string                  `json:"precio_unitario_display"`
	TotalCentavos          int64                   `json:"total_centavos"`
	TotalDisplay           string                  `json:"total_display"`
	Toppings               types.ToppingSelections `json:"toppings,omitempty"`
}

// OrderDTO is the order as returned to the merchant dashboard.
type OrderDTO struct {
	ID               uuid.UUID         `json:"id"`
	BusinessID       uuid.UUID         `json:"business_id"`
	Status           enums.OrderStatus `json:"status"`
	NombreCliente    string            `json:"nombre_cliente"`
	TelefonoCliente  string            `json:"telefono_cliente"`
	DireccionEntrega *string           `json:"direccion_entrega,omitempty"`
	Notas            *string           `json:"notas,omitempty"`
	TotalCentavos    int64             `json:"total_centavos"`
	TotalDisplay     string            `json:"total_display"`
	Items            []OrderLineDTO    `json:"items"`
	CreatedAt        time.Time         `json:"created_at"`
}

// OrderListResult pairs an order page with its next cursor.
type OrderListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func toOrderDTO(row *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:               row.ID,
		BusinessID:       row.BusinessID,
		Status:           row.Status,
		NombreCliente:    row.NombreCliente,
		TelefonoCliente:  row.TelefonoCliente,
		DireccionEntrega: row.DireccionEntrega,
		Notas:            row.Notas,
		TotalCentavos:    row.TotalCentavos,
		TotalDisplay:     cart.DisplayCentavos(row.TotalCentavos),
		Items:            make([]OrderLineDTO, 0, len(row.Items)),
		CreatedAt:        row.CreatedAt,
	}
	for _, item := range row.Items {
		dto.Items = append(dto.Items, OrderLineDTO{
			ID:                     item.ID,
			ProductID:              item.ProductID,
			NombreProducto:         item.NombreProducto,
			Cantidad:               item.Cantidad,
			PrecioUnitarioCentavos: item.PrecioUnitarioCentavos,
			PrecioUnitarioDisplay:  cart.DisplayCentavos(item.PrecioUnitarioCentavos),
			TotalCentavos:          item.TotalCentavos,
			TotalDisplay:           cart.DisplayCentavos(item.TotalCentavos),
			Toppings:               item.Toppings,
		})
	}
	return dto
}
