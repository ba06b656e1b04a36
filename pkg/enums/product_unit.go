package enums

import "fmt"

// ProductUnit is the label shown next to quantities ("kg", "unidad", ...).
type ProductUnit string

const (
	ProductUnitUnidad  ProductUnit = "unidad"
	ProductUnitKg      ProductUnit = "kg"
	ProductUnitDocena  ProductUnit = "docena"
	ProductUnitLitro   ProductUnit = "litro"
	ProductUnitPaquete ProductUnit = "paquete"
)

var validProductUnits = []ProductUnit{
	ProductUnitUnidad,
	ProductUnitKg,
	ProductUnitDocena,
	ProductUnitLitro,
	ProductUnitPaquete,
}

// String implements fmt.Stringer.
func (p ProductUnit) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductUnit.
func (p ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
