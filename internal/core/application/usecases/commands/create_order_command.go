package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"paybook/internal/core/domain/model/order"
	"paybook/internal/pkg/errs"
	"paybook/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one raw requested order line, as delivered by the
// transport layer before structural validation.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Construction performs the structural validation of the request; rules are
// evaluated in declared field order so the first violation found is always
// the one reported:
//
//	1. userId must be non-blank
//	2. items must be non-empty; each productId non-blank, each quantity >= 1
//	3. pointAmountToUse must not be negative
//
// The delivery address is accepted as opaque data and carried along without
// validation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("USER-001",
//	    []OrderItemInput{{ProductID: "PROD-001", Quantity: 2}},
//	    "221B Baker Street", "WELCOME10", 500)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID           string
	items            []order.ItemSpec
	deliveryAddress  string
	couponID         string
	pointAmountToUse int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// couponID may be empty (no coupon referenced) and pointAmountToUse may be
// zero (no points redeemed). Returns the first structural violation found,
// in declared field order.
func NewCreateOrderCommand(
	userID string,
	items []OrderItemInput,
	deliveryAddress string,
	couponID string,
	pointAmountToUse int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		couponID:        couponID,
		guard:           guard.NewConstructorGuard(),
	}

	// Validation runs field by field, not joined, so that exactly the first
	// violated field is reported.
	if err := orderCommand.setUserID(userID); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := orderCommand.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := orderCommand.setPointAmountToUse(pointAmountToUse); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the owner of the prospective order.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// Items returns a copy of the validated requested order lines.
func (c CreateOrderCommand) Items() []order.ItemSpec {
	return slices.Clone(c.items)
}

// DeliveryAddress returns the opaque delivery address, possibly empty.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// CouponID returns the referenced coupon identifier; empty when the request
// carried none.
func (c CreateOrderCommand) CouponID() string {
	return c.couponID
}

// PointAmountToUse returns the point amount to redeem; zero when the request
// carried none.
func (c CreateOrderCommand) PointAmountToUse() int {
	return c.pointAmountToUse
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	specs := make([]order.ItemSpec, 0, len(items))
	for _, item := range items {
		spec, err := order.NewItemSpec(item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	c.items = specs
	return nil
}

func (c *CreateOrderCommand) setPointAmountToUse(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pointAmountToUse",
			fmt.Errorf("%d is negative", amount))
	}

	c.pointAmountToUse = amount
	return nil
}
