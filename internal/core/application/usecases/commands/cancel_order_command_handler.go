package commands

import (
	"context"

	"paybook/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// The whole lookup-transition-update sequence runs inside one unit of work, so
// concurrent cancellations of the same order yield exactly one success; every
// other attempt observes the Cancelled state and fails.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(id)
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyCancelled) {
//	    // the order was cancelled by an earlier request
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for atomic registry access.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
//
// Fails with an errs.ObjectNotFoundError when the identifier is unknown and
// with order.ErrOrderAlreadyCancelled when the order is already in its
// terminal state. On success the updated order is returned with every field
// except the status untouched.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	// Clone before Commit releases exclusive access; existing stays in the
	// registry and may be read or mutated by the next operation.
	snapshot := existing.Clone()

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return snapshot, nil
}
