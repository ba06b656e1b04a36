package types

import "github.com/google/uuid"

// ToppingSelection is a chosen topping frozen onto a cart line. The surcharge
// is captured at selection time; later catalog edits never touch it.
type ToppingSelection struct {
	OptionID            uuid.UUID `json:"option_id"`
	GroupID             uuid.UUID `json:"group_id"`
	Nombre              string    `json:"nombre"`
	PrecioExtraCentavos int64     `json:"precio_extra_centavos"`
}

// ToppingSelections is the ordered set attached to a single cart line.
type ToppingSelections []ToppingSelection

// SurchargeCentavos sums the per-unit surcharge of every selection.
func (s ToppingSelections) SurchargeCentavos() int64 {
	var total int64
	for _, sel := range s {
		total += sel.PrecioExtraCentavos
	}
	return total
}
