package cart

import (
	"github.com/pedilo/pedilo-backend/internal/business"
	"github.com/pedilo/pedilo-backend/pkg/enums"
)

// Decision is the checkout gate outcome. Reason is empty when allowed;
// RemainingCentavos is set only for below-minimum blocks.
type Decision struct {
	Allowed           bool                      `json:"allowed"`
	Reason            enums.CheckoutBlockReason `json:"reason,omitempty"`
	RemainingCentavos int64                     `json:"remaining_centavos,omitempty"`
}

// CanCheckout derives whether the cart may be submitted. A closed store
// blocks regardless of total; a wholesale storefront with a configured
// minimum blocks until the total reaches it. The gate is read-only and
// re-run authoritatively at order submission.
func CanCheckout(c *Cart, pctx *business.PricingContext) Decision {
	if pctx == nil || !pctx.AceptaPedidos {
		return Decision{Reason: enums.CheckoutBlockReasonStoreClosed}
	}

	if pctx.TipoNegocio == enums.BusinessTypeMayorista && pctx.PedidoMinimoCentavos > 0 {
		if total := c.Total(); total < pctx.PedidoMinimoCentavos {
			return Decision{
				Reason:            enums.CheckoutBlockReasonBelowMinimum,
				RemainingCentavos: pctx.PedidoMinimoCentavos - total,
			}
		}
	}

	return Decision{Allowed: true}
}
