package ports

import (
	"context"

	"paybook/internal/core/domain/model/kernel"
)

// Fulfillment capability ports consulted during order placement. The stub
// adapters simulate outcomes from reserved sentinel inputs; a real inventory,
// promotion, or loyalty backend can replace any of them without touching the
// lifecycle engine.
type (
	// StockChecker verifies that a product can be supplied in the requested
	// quantity. Returns an order.RejectedError with code OUT_OF_STOCK when it
	// cannot.
	StockChecker interface {
		Check(ctx context.Context, productID string, quantity int) error
	}

	// CouponChecker verifies that a coupon is redeemable. Returns an
	// order.RejectedError with code COUPON_ALREADY_USED, COUPON_EXPIRED, or
	// COUPON_NOT_FOUND when it is not.
	CouponChecker interface {
		Check(ctx context.Context, couponID string) error
	}

	// PointsChecker verifies that a user's point balance covers the requested
	// amount. Returns an order.RejectedError with code POINTS_UNAVAILABLE when
	// it does not.
	PointsChecker interface {
		Check(ctx context.Context, userID string, amount int) error
	}

	// Pricer supplies the unit price attached to every order line at creation.
	// The price is constant per item by contract; it is fixed on the order and
	// never recomputed.
	Pricer interface {
		UnitPrice(ctx context.Context) (int, error)
	}
)

// OrderSequence issues order identifiers from the process-wide monotonic
// sequence. Identifiers are strictly increasing, never reused (not even after
// cancellation), and safe to draw from concurrently.
type OrderSequence interface {
	Next(ctx context.Context) (kernel.OrderID, error)
}
