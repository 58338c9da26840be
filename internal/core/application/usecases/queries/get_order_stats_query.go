package queries

import (
	"errors"

	"paybook/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves aggregate counters over the whole registry.
// This is a parameterless query used by the periodic report job.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for registry-wide counters.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries registry-wide counters.
// IdentifiersIssued counts every identifier ever drawn from the sequence,
// including those of placements that subsequently failed, so it can exceed
// Total.
type GetOrderStatsQueryResponse struct {
	Pending           int
	Cancelled         int
	Total             int
	IdentifiersIssued uint64
}
