package ports

import (
	"context"

	"paybook/internal/core/domain/model/kernel"
	"paybook/internal/core/domain/model/order"
)

// OrderRepository defines the registry contract for order aggregates.
// The registry owns every order for the process lifetime; orders are never
// evicted.
type OrderRepository interface {
	// Add stores a newly created order aggregate.
	// The order must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order aggregate.
	// The order must already exist in the registry and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an errs.ObjectNotFoundError when the identifier is unknown.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
