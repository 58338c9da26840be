package queries

import (
	"context"

	"paybook/internal/adapters/out/memory"
)

// GetOrderStatsQueryHandler computes registry-wide counters.
type GetOrderStatsQueryHandler struct {
	store *memory.Store
}

// NewGetOrderStatsQueryHandler creates a handler for registry statistics.
func NewGetOrderStatsQueryHandler(store *memory.Store) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{store: store}
}

// Handle executes the query. Counters are computed under the shared lock, so
// Pending+Cancelled always equals Total.
func (h GetOrderStatsQueryHandler) Handle(
	_ context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	pending, cancelled := h.store.Stats()
	return GetOrderStatsQueryResponse{
		Pending:           pending,
		Cancelled:         cancelled,
		Total:             pending + cancelled,
		IdentifiersIssued: h.store.Issued(),
	}, nil
}
