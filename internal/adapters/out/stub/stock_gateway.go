package stub

import (
	"context"
	"fmt"

	"paybook/internal/core/domain/model/order"
)

// StockGateway simulates an inventory check. Implements ports.StockChecker.
type StockGateway struct{}

// NewStockGateway creates a stub inventory gateway.
func NewStockGateway() *StockGateway {
	return &StockGateway{}
}

// Check rejects quantities at or above OutOfStockThreshold and accepts
// everything else.
func (g *StockGateway) Check(_ context.Context, productID string, quantity int) error {
	if quantity >= OutOfStockThreshold {
		return order.NewRejectedError(order.RejectionOutOfStock,
			fmt.Sprintf("insufficient stock for product %s", productID))
	}
	return nil
}
