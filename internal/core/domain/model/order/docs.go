// Package order provides the domain model for the paybook order stub.
// It implements the Order aggregate root with lifecycle management and the
// business-rule rejection vocabulary used by the placement capabilities.
//
// The package includes:
//   - Order: the aggregate root holding identity, items, total, and lifecycle state
//   - Status: a state machine enforcing the only valid transition, PENDING -> CANCELLED
//   - ItemSpec / Item: requested order lines and their priced counterparts
//   - RejectedError: a classified business-rule rejection carrying a stable code
//
// Key business rules:
//   - Orders must have a valid identifier, a non-blank user, and at least one item
//   - The total amount is computed once at creation and never recomputed
//   - Cancellation is terminal; cancelling a cancelled order is an error, not a no-op
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
