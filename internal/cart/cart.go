package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pedilo/pedilo-backend/internal/business"
	"github.com/pedilo/pedilo-backend/pkg/enums"
	pkgerrors "github.com/pedilo/pedilo-backend/pkg/errors"
	"github.com/pedilo/pedilo-backend/pkg/types"
)

// Cart is the ordered collection of lines for one business slug. Carts for
// different slugs share no state.
type Cart struct {
	Slug      string    `json:"slug"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCart returns an empty cart scoped to the provided slug.
func NewCart(slug string) *Cart {
	return &Cart{Slug: slug}
}

func errStoreClosed() error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "store is not accepting orders").
		WithDetails(map[string]any{"reason": enums.CheckoutBlockReasonStoreClosed})
}

func errInvalidQuantity(requested, floor int) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid quantity").
		WithDetails(map[string]any{"requested_qty": requested, "minimum_qty": floor})
}

func errLineNotFound(id uuid.UUID) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("cart line %s not found", id))
}

// guard rejects every mutation while the storefront is closed. Enforced
// here, at the aggregate boundary, so a stale client cannot race the
// merchant flipping acepta_pedidos off.
func (c *Cart) guard(pctx *business.PricingContext) error {
	if pctx == nil || !pctx.AceptaPedidos {
		return errStoreClosed()
	}
	return nil
}

// AddSimple adds one unit of a toppings-free product. An existing
// toppings-free line for the same product absorbs the unit; otherwise a
// new line starts at the wholesale minimum when one applies.
func (c *Cart) AddSimple(product ProductSnapshot, pctx *business.PricingContext) (*Line, error) {
	if err := c.guard(pctx); err != nil {
		return nil, err
	}

	if existing := c.findSimpleLine(product.ProductID); existing != nil {
		existing.Cantidad++
		c.touch()
		return existing, nil
	}

	qty := 1
	if pctx.TipoNegocio == enums.BusinessTypeMayorista && product.CantidadMinima > 1 {
		qty = product.CantidadMinima
	}

	c.Lines = append(c.Lines, Line{
		ID:       uuid.New(),
		Product:  product,
		Cantidad: qty,
	})
	c.touch()
	return &c.Lines[len(c.Lines)-1], nil
}

// AddWithToppings inserts a new, always-distinct line. Identical topping
// combinations across separate adds stay separate lines on purpose, so
// two separately customized items never collapse into one.
func (c *Cart) AddWithToppings(product ProductSnapshot, toppings types.ToppingSelections, qty int, pctx *business.PricingContext) (*Line, error) {
	if err := c.guard(pctx); err != nil {
		return nil, err
	}
	if qty < 1 {
		return nil, errInvalidQuantity(qty, 1)
	}

	precioConToppings := product.PrecioCentavos + toppings.SurchargeCentavos()

	c.Lines = append(c.Lines, Line{
		ID:                        uuid.New(),
		Product:                   product,
		Cantidad:                  qty,
		Toppings:                  toppings,
		PrecioConToppingsCentavos: &precioConToppings,
	})
	c.touch()
	return &c.Lines[len(c.Lines)-1], nil
}

// Increase adds one unit to an existing line.
func (c *Cart) Increase(lineID uuid.UUID, pctx *business.PricingContext) (*Line, error) {
	if err := c.guard(pctx); err != nil {
		return nil, err
	}
	line := c.findLine(lineID)
	if line == nil {
		return nil, errLineNotFound(lineID)
	}
	line.Cantidad++
	c.touch()
	return line, nil
}

// Decrease removes one unit from a line. Decrementing a line sitting at
// its floor removes the line entirely rather than going below it.
func (c *Cart) Decrease(lineID uuid.UUID, pctx *business.PricingContext) (*Line, error) {
	if err := c.guard(pctx); err != nil {
		return nil, err
	}
	line := c.findLine(lineID)
	if line == nil {
		return nil, errLineNotFound(lineID)
	}

	if line.Cantidad <= line.Floor(pctx.TipoNegocio) {
		c.removeLine(lineID)
		c.touch()
		return nil, nil
	}

	line.Cantidad--
	c.touch()
	return line, nil
}

// SetQuantity sets the absolute quantity of the toppings-free line for a
// product. Zero removes the line; a positive quantity on a missing line
// creates one. Quantities below the line's floor are rejected and leave
// the cart untouched.
func (c *Cart) SetQuantity(product ProductSnapshot, qty int, pctx *business.PricingContext) (*Line, error) {
	if err := c.guard(pctx); err != nil {
		return nil, err
	}
	if qty < 0 {
		return nil, errInvalidQuantity(qty, 0)
	}

	existing := c.findSimpleLine(product.ProductID)

	if qty == 0 {
		if existing != nil {
			c.removeLine(existing.ID)
			c.touch()
		}
		return nil, nil
	}

	probe := Line{Product: product}
	if floor := probe.Floor(pctx.TipoNegocio); qty < floor {
		return nil, errInvalidQuantity(qty, floor)
	}

	if existing != nil {
		existing.Cantidad = qty
		c.touch()
		return existing, nil
	}

	c.Lines = append(c.Lines, Line{
		ID:       uuid.New(),
		Product:  product,
		Cantidad: qty,
	})
	c.touch()
	return &c.Lines[len(c.Lines)-1], nil
}

func (c *Cart) findLine(id uuid.UUID) *Line {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return &c.Lines[i]
		}
	}
	return nil
}

// findSimpleLine returns the toppings-free line for a product, if any.
// Merge identity is (product, no toppings); topping lines never merge.
func (c *Cart) findSimpleLine(productID uuid.UUID) *Line {
	for i := range c.Lines {
		if c.Lines[i].Product.ProductID == productID && !c.Lines[i].HasToppings() {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) removeLine(id uuid.UUID) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
