package cart

// EffectiveUnitPrice resolves the per-unit price of a line in centavos.
//
// The wholesale tier applies only when the product snapshot carries both
// precio_mayorista and cantidad_mayorista and the line quantity meets the
// threshold. Topping surcharge is the difference between the captured
// precio_con_toppings and the base precio, so it survives wholesale
// qualification and later topping catalog edits alike.
func EffectiveUnitPrice(line Line) int64 {
	base := line.Product.PrecioCentavos
	if line.Product.HasWholesaleTier() && line.Cantidad >= *line.Product.CantidadMayorista {
		base = *line.Product.PrecioMayoristaCentavos
	}
	if line.HasToppings() && line.PrecioConToppingsCentavos != nil {
		base += *line.PrecioConToppingsCentavos - line.Product.PrecioCentavos
	}
	return base
}

// LineTotal returns the line's effective price times its quantity.
func LineTotal(line Line) int64 {
	return EffectiveUnitPrice(line) * int64(line.Cantidad)
}

// Total sums every line total. Exact integer centavos; display rounding
// belongs to the response layer.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += LineTotal(line)
	}
	return total
}

// ItemCount sums the quantities across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Cantidad
	}
	return count
}
