package order

import (
	"errors"
	"fmt"
)

// ErrOrderRejected is the sentinel for every business-rule rejection raised
// during order placement. Use errors.Is(err, ErrOrderRejected) to classify and
// errors.As with *RejectedError to read the code.
var ErrOrderRejected = errors.New("order rejected")

// RejectionCode identifies the business rule that blocked an order placement.
// Codes are stable and surfaced verbatim in API error responses.
type RejectionCode string

const (
	// RejectionOutOfStock indicates a requested quantity exceeds available stock.
	RejectionOutOfStock RejectionCode = "OUT_OF_STOCK"

	// RejectionCouponAlreadyUsed indicates the referenced coupon was already redeemed.
	RejectionCouponAlreadyUsed RejectionCode = "COUPON_ALREADY_USED"

	// RejectionCouponExpired indicates the referenced coupon is past its validity.
	RejectionCouponExpired RejectionCode = "COUPON_EXPIRED"

	// RejectionCouponNotFound indicates the referenced coupon does not exist.
	RejectionCouponNotFound RejectionCode = "COUPON_NOT_FOUND"

	// RejectionPointsUnavailable indicates the user's point balance cannot cover the request.
	RejectionPointsUnavailable RejectionCode = "POINTS_UNAVAILABLE"
)

// EntityMissing reports whether the rejection refers to an entity that does
// not exist rather than to conflicting state. Missing entities map to 404 at
// the transport boundary, conflicts to 409.
func (c RejectionCode) EntityMissing() bool {
	return c == RejectionCouponNotFound
}

// RejectedError is a classified business-rule rejection. The placement
// capabilities create it at the point of detection; it is surfaced verbatim
// as the {code, message} error body.
type RejectedError struct {
	Code    RejectionCode
	Message string
	Cause   error
}

// NewRejectedError creates a RejectedError without an underlying cause.
func NewRejectedError(code RejectionCode, message string) *RejectedError {
	return &RejectedError{
		Code:    code,
		Message: message,
	}
}

// NewRejectedErrorWithCause creates a RejectedError wrapping an underlying cause.
func NewRejectedErrorWithCause(code RejectionCode, message string, cause error) *RejectedError {
	return &RejectedError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error formats the rejection, appending the cause when present.
func (e *RejectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%s) (cause: %s)", ErrOrderRejected, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrOrderRejected, e.Code, e.Message)
}

// Unwrap returns ErrOrderRejected so errors.Is can classify this error.
func (e *RejectedError) Unwrap() error {
	return ErrOrderRejected
}
