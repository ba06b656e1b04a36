package cart

import (
	"testing"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/pkg/enums"
)

func TestCanCheckoutClosedStore(t *testing.T) {
	pctx := wholesaleContext(1000)
	pctx.AceptaPedidos = false

	cart := NewCart("mayorista-central")
	cart.Lines = []Line{{ID: uuid.New(), Product: simpleProduct(5000), Cantidad: 1}}

	decision := CanCheckout(cart, pctx)
	if decision.Allowed {
		t.Fatal("expected checkout blocked for closed store")
	}
	if decision.Reason != enums.CheckoutBlockReasonStoreClosed {
		t.Fatalf("expected store_closed reason, got %q", decision.Reason)
	}
}

func TestCanCheckoutMinimumOrder(t *testing.T) {
	pctx := wholesaleContext(1000)
	cart := NewCart("mayorista-central")
	cart.Lines = []Line{{ID: uuid.New(), Product: simpleProduct(999), Cantidad: 1}}

	decision := CanCheckout(cart, pctx)
	if decision.Allowed {
		t.Fatal("expected checkout blocked below minimum")
	}
	if decision.Reason != enums.CheckoutBlockReasonBelowMinimum {
		t.Fatalf("expected below_minimum reason, got %q", decision.Reason)
	}
	if decision.RemainingCentavos != 1 {
		t.Fatalf("expected remaining 1, got %d", decision.RemainingCentavos)
	}

	cart.Lines[0].Product.PrecioCentavos = 1000
	decision = CanCheckout(cart, pctx)
	if !decision.Allowed {
		t.Fatalf("expected checkout allowed at minimum, got reason %q", decision.Reason)
	}
}

func TestCanCheckoutRetailIgnoresMinimum(t *testing.T) {
	pctx := retailContext()
	pctx.PedidoMinimoCentavos = 100000

	cart := NewCart("la-esquina")
	cart.Lines = []Line{{ID: uuid.New(), Product: simpleProduct(50), Cantidad: 1}}

	decision := CanCheckout(cart, pctx)
	if !decision.Allowed {
		t.Fatalf("expected retail checkout allowed regardless of minimum, got %q", decision.Reason)
	}
}

func TestCanCheckoutEmptyWholesaleCart(t *testing.T) {
	pctx := wholesaleContext(1000)
	decision := CanCheckout(NewCart("mayorista-central"), pctx)
	if decision.Allowed {
		t.Fatal("expected empty cart below minimum to be blocked")
	}
	if decision.RemainingCentavos != 1000 {
		t.Fatalf("expected remaining 1000, got %d", decision.RemainingCentavos)
	}
}
