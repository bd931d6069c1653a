package entity

// PriceRange is the price tier of a cafe.
type PriceRange string

const (
	PriceLow    PriceRange = "$"
	PriceMedium PriceRange = "$$"
	PriceHigh   PriceRange = "$$$"

	// DefaultPriceRange is applied when a submission does not specify a tier.
	DefaultPriceRange = PriceMedium
)

// String returns the string representation of the PriceRange.
func (p PriceRange) String() string {
	return string(p)
}

// IsValid checks if the PriceRange is one of the known tiers.
func (p PriceRange) IsValid() bool {
	switch p {
	case PriceLow, PriceMedium, PriceHigh:
		return true
	default:
		return false
	}
}
