package stub

import "context"

// PricingGateway returns one fixed price for every product.
// Implements ports.Pricer.
type PricingGateway struct {
	unitPrice int
}

// NewPricingGateway creates a pricing gateway with the given per-item price.
// Non-positive prices fall back to DefaultUnitPrice.
func NewPricingGateway(unitPrice int) *PricingGateway {
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	return &PricingGateway{unitPrice: unitPrice}
}

// UnitPrice returns the configured per-item price.
func (g *PricingGateway) UnitPrice(_ context.Context) (int, error) {
	return g.unitPrice, nil
}
