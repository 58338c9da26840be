package order

import (
	"errors"
	"fmt"

	"paybook/internal/pkg/errs"
)

// ErrOrderAlreadyCancelled is returned when attempting to cancel an order that
// is already in the Cancelled state. The second cancellation is an error by
// contract, never a silent no-op.
var ErrOrderAlreadyCancelled = errors.New("order is already cancelled")

// Status represents the lifecycle state of an order.
// It implements a state machine with a single defined transition.
//
// State transitions:
//
//	Pending ──cancel──> Cancelled
//
// Cancelled is terminal; there is no way back to Pending and no
// Cancelled -> Cancelled transition. Creation is the only way to
// enter Pending.
//
// Status is a value object that validates state transitions and provides the
// wire representation used in API responses ("PENDING", "CANCELLED").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created order.
	Pending

	// Cancelled indicates the order has been cancelled.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Cancelled: "CANCELLED",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending and Cancelled; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status: "PENDING" or
// "CANCELLED" for valid statuses, "UNKNOWN" otherwise. This method implements
// the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (returns ErrOrderAlreadyCancelled)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, ErrOrderAlreadyCancelled) if the status is already Cancelled
//   - (0, error) for any other invalid starting status
//
// This method is used by Order.Cancel() to enforce the lifecycle contract.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, ErrOrderAlreadyCancelled
	}

	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
