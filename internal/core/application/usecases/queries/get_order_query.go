package queries

import (
	"errors"
	"time"

	"paybook/internal/core/domain/model/kernel"
	"paybook/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString("ORD-000001")
//	query, _ := queries.NewGetOrderQuery(id)
//	handler := queries.NewGetOrderQueryHandler(store)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.OrderID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.OrderID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier being queried.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderItemResponse represents one order line in a query response.
type GetOrderItemResponse struct {
	ProductID string
	Quantity  int
	Price     int
}

// GetOrderQueryResponse represents the full state of one order.
type GetOrderQueryResponse struct {
	OrderID     string
	UserID      string
	Items       []GetOrderItemResponse
	TotalAmount int
	Status      string
	CreatedAt   time.Time
}
