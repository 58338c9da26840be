package commands

import (
	"context"
	"time"

	"paybook/internal/core/domain/model/order"
	"paybook/internal/core/domain/services"
	"paybook/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Evaluates the placement policy, prices the requested lines, draws an
// identifier from the process-wide sequence, and inserts the new order into
// the registry in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequence, pricer, policy)
//	cmd, _ := NewCreateOrderCommand("USER-001",
//	    []OrderItemInput{{ProductID: "PROD-001", Quantity: 2}}, "", "", 0)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", created.ID())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequence   ports.OrderSequence
	pricer     ports.Pricer
	policy     services.PlacementPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a unit of work factory for registry access, the identifier
// sequence, a pricer, and the placement policy.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sequence ports.OrderSequence,
	pricer ports.Pricer,
	policy services.PlacementPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
		pricer:     pricer,
		policy:     policy,
	}
}

// Handle processes the order placement command.
//
// The placement policy runs before any state is touched, so a rejected
// request leaves the registry unchanged and consumes no identifier. An
// identifier is drawn only once placement is approved; the order is then
// created in Pending status and inserted atomically.
//
// Returns the created order, a *order.RejectedError when a business rule
// fired, or a validation error for an unconstructed command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placement := services.Placement{
		UserID:      cmd.UserID(),
		Items:       cmd.Items(),
		CouponID:    cmd.CouponID(),
		PointsToUse: cmd.PointAmountToUse(),
	}
	if err := h.policy.Evaluate(ctx, placement); err != nil {
		return nil, err
	}

	unitPrice, err := h.pricer.UnitPrice(ctx)
	if err != nil {
		return nil, err
	}

	id, err := h.sequence.Next(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(id, cmd.UserID(), cmd.Items(), unitPrice, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	// The registry now holds newOrder; clone before Commit releases
	// exclusive access so the caller never shares state with a concurrent
	// cancellation.
	snapshot := newOrder.Clone()

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return snapshot, nil
}
