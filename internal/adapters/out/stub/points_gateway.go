package stub

import (
	"context"
	"fmt"

	"paybook/internal/core/domain/model/order"
)

// PointsGateway simulates a point balance check. Implements ports.PointsChecker.
type PointsGateway struct{}

// NewPointsGateway creates a stub point balance gateway.
func NewPointsGateway() *PointsGateway {
	return &PointsGateway{}
}

// Check rejects amounts at or above PointsUnavailableThreshold and accepts
// everything else. Callers skip the check when no points were requested.
func (g *PointsGateway) Check(_ context.Context, userID string, amount int) error {
	if amount >= PointsUnavailableThreshold {
		return order.NewRejectedError(order.RejectionPointsUnavailable,
			fmt.Sprintf("user %s does not have %d points", userID, amount))
	}
	return nil
}
