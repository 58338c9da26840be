// Package stub implements the fulfillment ports against fixed sentinel
// values instead of real inventory, coupon or point systems.
//
// The gateways exist for contract testing: a client picks the outcome it
// wants to exercise by sending a reserved value, and every other value is
// accepted. No state is consulted and no state is changed.
//
// Reserved values:
//   - quantity >= 999999 on any line is out of stock
//   - coupon identifiers "USED", "EXPIRED" and "INVALID" fail with the
//     matching rejection; any other non-empty identifier is valid
//   - pointAmountToUse >= 999999 exceeds the point balance
package stub

const (
	// OutOfStockThreshold is the smallest per-line quantity treated as
	// exceeding available stock.
	OutOfStockThreshold = 999999

	// PointsUnavailableThreshold is the smallest point amount treated as
	// exceeding the user's balance.
	PointsUnavailableThreshold = 999999

	// CouponUsed is the coupon identifier reserved for the already-redeemed
	// outcome.
	CouponUsed = "USED"

	// CouponExpired is the coupon identifier reserved for the past-validity
	// outcome.
	CouponExpired = "EXPIRED"

	// CouponInvalid is the coupon identifier reserved for the unknown-coupon
	// outcome.
	CouponInvalid = "INVALID"

	// DefaultUnitPrice is the fixed per-item price applied when no price is
	// configured.
	DefaultUnitPrice = 10000
)
