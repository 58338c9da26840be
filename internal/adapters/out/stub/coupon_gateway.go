package stub

import (
	"context"
	"fmt"

	"paybook/internal/core/domain/model/order"
)

// CouponGateway simulates coupon validation. Implements ports.CouponChecker.
type CouponGateway struct{}

// NewCouponGateway creates a stub coupon gateway.
func NewCouponGateway() *CouponGateway {
	return &CouponGateway{}
}

// Check maps the reserved coupon identifiers to their rejections and accepts
// any other identifier. Callers skip the check entirely when no coupon was
// sent, so Check never sees an empty identifier.
func (g *CouponGateway) Check(_ context.Context, couponID string) error {
	switch couponID {
	case CouponUsed:
		return order.NewRejectedError(order.RejectionCouponAlreadyUsed,
			fmt.Sprintf("coupon %s has already been used", couponID))
	case CouponExpired:
		return order.NewRejectedError(order.RejectionCouponExpired,
			fmt.Sprintf("coupon %s has expired", couponID))
	case CouponInvalid:
		return order.NewRejectedError(order.RejectionCouponNotFound,
			fmt.Sprintf("coupon %s does not exist", couponID))
	}
	return nil
}
