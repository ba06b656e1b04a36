package enums

import "fmt"

// BusinessType distinguishes retail storefronts from wholesale ones.
// Wholesale businesses unlock per-product volume pricing and a configurable
// minimum order amount.
type BusinessType string

const (
	BusinessTypeMinorista BusinessType = "minorista"
	BusinessTypeMayorista BusinessType = "mayorista"
)

var validBusinessTypes = []BusinessType{
	BusinessTypeMinorista,
	BusinessTypeMayorista,
}

// String implements fmt.Stringer.
func (b BusinessType) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BusinessType.
func (b BusinessType) IsValid() bool {
	for _, candidate := range validBusinessTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBusinessType converts raw input into a BusinessType.
func ParseBusinessType(value string) (BusinessType, error) {
	for _, candidate := range validBusinessTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid business type %q", value)
}
