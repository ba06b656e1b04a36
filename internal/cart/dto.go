package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedilo/pedilo-backend/pkg/enums"
	"github.com/pedilo/pedilo-backend/pkg/types"
)

// LineView is a priced cart line as returned to clients.
type LineView struct {
	ID                 uuid.UUID               `json:"id"`
	ProductID          uuid.UUID               `json:"product_id"`
	Nombre             string                  `json:"nombre"`
	Unidad             enums.ProductUnit       `json:"unidad"`
	ImagenURL          *string                 `json:"imagen_url,omitempty"`
	Cantidad           int                     `json:"cantidad"`
	Toppings           types.ToppingSelections `json:"toppings,omitempty"`
	UnitPriceCentavos  int64                   `json:"unit_price_centavos"`
	UnitPriceDisplay   string                  `json:"unit_price_display"`
	LineTotalCentavos  int64                   `json:"line_total_centavos"`
	LineTotalDisplay   string                  `json:"line_total_display"`
	WholesaleQualifies bool                    `json:"wholesale_qualifies"`
}

// CartView is the full cart payload: priced lines, totals, and the
// advisory gate decision.
type CartView struct {
	Slug          string     `json:"slug"`
	Lines         []LineView `json:"lines"`
	ItemCount     int        `json:"item_count"`
	TotalCentavos int64      `json:"total_centavos"`
	TotalDisplay  string     `json:"total_display"`
	Gate          Decision   `json:"gate"`
}

// AddWithToppingsInput captures a customized add request. Option IDs are
// resolved against the product's topping groups at add time.
type AddWithToppingsInput struct {
	ProductID uuid.UUID
	Cantidad  int
	OptionIDs []uuid.UUID
}

// DisplayCentavos formats integer centavos as a two-decimal amount.
// Rounding happens only here, at the presentation edge.
func DisplayCentavos(centavos int64) string {
	return decimal.New(centavos, -2).StringFixed(2)
}

func buildView(c *Cart, gate Decision) *CartView {
	lines := make([]LineView, 0, len(c.Lines))
	for _, line := range c.Lines {
		unit := EffectiveUnitPrice(line)
		total := LineTotal(line)
		lines = append(lines, LineView{
			ID:                 line.ID,
			ProductID:          line.Product.ProductID,
			Nombre:             line.Product.Nombre,
			Unidad:             line.Product.Unidad,
			ImagenURL:          line.Product.ImagenURL,
			Cantidad:           line.Cantidad,
			Toppings:           line.Toppings,
			UnitPriceCentavos:  unit,
			UnitPriceDisplay:   DisplayCentavos(unit),
			LineTotalCentavos:  total,
			LineTotalDisplay:   DisplayCentavos(total),
			WholesaleQualifies: line.Product.HasWholesaleTier() && line.Cantidad >= *line.Product.CantidadMayorista,
		})
	}
	total := c.Total()
	return &CartView{
		Slug:          c.Slug,
		Lines:         lines,
		ItemCount:     c.ItemCount(),
		TotalCentavos: total,
		TotalDisplay:  DisplayCentavos(total),
		Gate:          gate,
	}
}
