package enums

import "fmt"

// CheckoutBlockReason explains why the checkout gate refused a cart.
type CheckoutBlockReason string

const (
	CheckoutBlockReasonStoreClosed  CheckoutBlockReason = "store_closed"
	CheckoutBlockReasonBelowMinimum CheckoutBlockReason = "below_minimum"
)

var validCheckoutBlockReasons = []CheckoutBlockReason{
	CheckoutBlockReasonStoreClosed,
	CheckoutBlockReasonBelowMinimum,
}

// String implements fmt.Stringer.
func (c CheckoutBlockReason) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CheckoutBlockReason.
func (c CheckoutBlockReason) IsValid() bool {
	for _, candidate := range validCheckoutBlockReasons {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCheckoutBlockReason converts raw input into a CheckoutBlockReason.
func ParseCheckoutBlockReason(value string) (CheckoutBlockReason, error) {
	for _, candidate := range validCheckoutBlockReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout block reason %q", value)
}
