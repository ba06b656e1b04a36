package cart

import (
	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/enums"
	"github.com/pedilo/pedilo-backend/pkg/types"
)

// ProductSnapshot is the denormalized catalog data frozen onto a line at
// add time. Later catalog edits never change lines already in the cart.
type ProductSnapshot struct {
	ProductID               uuid.UUID         `json:"product_id"`
	Nombre                  string            `json:"nombre"`
	Unidad                  enums.ProductUnit `json:"unidad"`
	ImagenURL               *string           `json:"imagen_url,omitempty"`
	PrecioCentavos          int64             `json:"precio_centavos"`
	PrecioMayoristaCentavos *int64            `json:"precio_mayorista_centavos,omitempty"`
	CantidadMayorista       *int              `json:"cantidad_mayorista,omitempty"`
	CantidadMinima          int               `json:"cantidad_minima"`
}

// HasWholesaleTier reports whether both wholesale fields are present.
// Either one missing means no wholesale tier.
func (p ProductSnapshot) HasWholesaleTier() bool {
	return p.PrecioMayoristaCentavos != nil && p.CantidadMayorista != nil
}

// Line is one distinguishable entry in the cart.
type Line struct {
	ID       uuid.UUID               `json:"id"`
	Product  ProductSnapshot         `json:"product"`
	Cantidad int                     `json:"cantidad"`
	Toppings types.ToppingSelections `json:"toppings,omitempty"`

	// PrecioConToppingsCentavos is precio + topping surcharge captured when
	// the line was added. Nil for toppings-free lines.
	PrecioConToppingsCentavos *int64 `json:"precio_con_toppings_centavos,omitempty"`
}

// HasToppings reports whether the line carries any topping selections.
func (l Line) HasToppings() bool {
	return len(l.Toppings) > 0
}

// Floor returns the minimum quantity the line may hold: the product's
// cantidad_minima for wholesale storefronts, 1 otherwise.
func (l Line) Floor(tipo enums.BusinessType) int {
	if tipo == enums.BusinessTypeMayorista && l.Product.CantidadMinima > 1 {
		return l.Product.CantidadMinima
	}
	return 1
}
