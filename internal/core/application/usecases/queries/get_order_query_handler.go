package queries

import (
	"context"

	"paybook/internal/adapters/out/memory"
	"paybook/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order from the registry.
// Reads take the registry's shared lock, so they never block each other and
// never observe a half-applied command.
type GetOrderQueryHandler struct {
	store *memory.Store
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires the registry the commands write into.
func NewGetOrderQueryHandler(store *memory.Store) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when the
// identifier is unknown to the registry.
func (h GetOrderQueryHandler) Handle(
	_ context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	found, ok := h.store.Find(query.OrderID())
	if !ok {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"orderId", query.OrderID().String())
	}

	items := make([]GetOrderItemResponse, 0, len(found.Items()))
	for _, item := range found.Items() {
		items = append(items, GetOrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return GetOrderQueryResponse{
		OrderID:     found.ID().String(),
		UserID:      found.UserID(),
		Items:       items,
		TotalAmount: found.TotalAmount(),
		Status:      found.Status().String(),
		CreatedAt:   found.CreatedAt(),
	}, nil
}
