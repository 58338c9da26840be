package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"paybook/internal/pkg/errs"
)

// orderIDPrefix is the fixed prefix of every issued order identifier.
const orderIDPrefix = "ORD-"

// orderIDSuffixWidth is the minimum zero-padded width of the numeric suffix.
const orderIDSuffixWidth = 6

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or OrderIDFromString. This error is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is a value object that represents an order identifier of the form
// "ORD-000001". The numeric suffix is the position in the process-wide issue
// sequence, zero-padded to six digits and widening beyond that as needed.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value    string
	sequence uint64
}

// NewOrderID creates an OrderID from its sequence position.
// Sequence positions start at 1; zero is rejected.
//
// Example:
//
//	id, _ := kernel.NewOrderID(7)
//	fmt.Println(id.String()) // "ORD-000007"
func NewOrderID(sequence uint64) (OrderID, error) {
	if sequence == 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("sequence positions start at 1"))
	}

	return OrderID{
		value:    fmt.Sprintf("%s%0*d", orderIDPrefix, orderIDSuffixWidth, sequence),
		sequence: sequence,
	}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// The string must start with the "ORD-" prefix followed by a numeric suffix of
// at least six digits. This is typically used when parsing identifiers from
// request paths.
func OrderIDFromString(s string) (OrderID, error) {
	suffix, ok := strings.CutPrefix(s, orderIDPrefix)
	if !ok || len(suffix) < orderIDSuffixWidth {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not a valid order identifier", s))
	}

	sequence, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil || sequence == 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not a valid order identifier", s))
	}

	return OrderID{value: s, sequence: sequence}, nil
}

// String returns the full identifier, e.g. "ORD-000007".
func (id OrderID) String() string {
	return id.value
}

// Sequence returns the position in the issue sequence the identifier was
// created from. Sequence positions are strictly increasing across issued
// identifiers and are never reused.
func (id OrderID) Sequence() uint64 {
	return id.sequence
}

// IsEqual compares two OrderIDs by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
