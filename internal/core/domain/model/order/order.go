package order

import (
	"errors"
	"slices"
	"time"

	"paybook/internal/core/domain/model/kernel"
	"paybook/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents an order held by the in-process registry. It is the
// aggregate root that manages the order lifecycle from creation to
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid, issued identifier
//   - Must belong to a non-blank user
//   - Must contain at least one priced item
//   - The total amount equals the sum of item subtotals computed at creation
//     and is never recomputed afterwards
//   - Status only ever transitions Pending -> Cancelled
//
// The Order struct uses private fields to ensure encapsulation; the registry
// is the only holder of a mutable reference.
type Order struct {
	// id is the issued order identifier
	id kernel.OrderID

	// userID is the owner of the order
	userID string

	// items are the priced order lines, immutable once attached
	items []Item

	// totalAmount is the sum of item subtotals, fixed at creation
	totalAmount int

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in the Pending state. This is the only way to
// create a valid Order and the only way to enter the Pending state.
//
// Every requested line is priced with the given unit price and the total
// amount is computed as the sum of line subtotals. The total is fixed from
// this point on.
//
// Parameters:
//   - id: issued order identifier (must be valid)
//   - userID: owner of the order (must be non-blank)
//   - specs: requested order lines (must be non-empty and valid)
//   - unitPrice: price attached to every line (must be positive)
//   - createdAt: creation timestamp (must be non-zero)
//
// Returns the created order or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.OrderID,
	userID string,
	specs []ItemSpec,
	unitPrice int,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	if len(specs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	items := make([]Item, 0, len(specs))
	totalAmount := 0
	for _, spec := range specs {
		item, err := NewItem(spec, unitPrice)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		totalAmount += item.Subtotal()
	}

	return &Order{
		id:            id,
		userID:        userID,
		items:         items,
		totalAmount:   totalAmount,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Clone returns an independent copy of the order. Cancel mutates an order in
// place, so any aggregate handed across a synchronization boundary must be a
// clone taken while the holder still had exclusive or shared access.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = slices.Clone(o.items)
	return &clone
}

// ID returns the issued order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// UserID returns the owner of the order.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns a copy of the priced order lines. Callers cannot mutate the
// lines held by the aggregate.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalAmount returns the total computed at creation time.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Cancel transitions the order to Cancelled, leaving all other fields
// untouched.
//
// This method enforces the following business rules:
//   - Only a Pending order can be cancelled
//   - A second cancellation fails with ErrOrderAlreadyCancelled
//
// Returns nil on success or the transition error otherwise. On error the
// order is left unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
