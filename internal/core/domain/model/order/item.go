package order

import (
	"errors"
	"fmt"
	"strings"

	"paybook/internal/pkg/errs"
	"paybook/internal/pkg/guard"
)

var (
	// ErrItemSpecIsNotConstructed is returned when an ItemSpec was not created
	// through the NewItemSpec constructor.
	ErrItemSpecIsNotConstructed = errors.New("ItemSpec must be created via NewItemSpec constructor")

	// ErrItemIsNotConstructed is returned when an Item was not created through
	// the NewItem constructor.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// ItemSpec is a value object describing one requested order line: which
// product and how many units. It carries no price; prices are attached when
// the order is created.
//
// ItemSpec is immutable and can only be created through NewItemSpec.
type ItemSpec struct {
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemSpec creates a validated order line request.
// The product identifier must be non-blank and the quantity at least 1.
func NewItemSpec(productID string, quantity int) (ItemSpec, error) {
	spec := ItemSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := spec.setProductID(productID); err != nil {
		return ItemSpec{}, err
	}
	if err := spec.setQuantity(quantity); err != nil {
		return ItemSpec{}, err
	}

	return spec, nil
}

// Validate ensures the ItemSpec was created through the constructor.
func (s ItemSpec) Validate() error {
	return s.guard.Validate(ErrItemSpecIsNotConstructed)
}

// ProductID returns the requested product identifier.
func (s ItemSpec) ProductID() string {
	return s.productID
}

// Quantity returns the requested unit count.
func (s ItemSpec) Quantity() int {
	return s.quantity
}

func (s *ItemSpec) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	s.productID = productID
	return nil
}

func (s *ItemSpec) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	s.quantity = quantity
	return nil
}

// Item is a priced order line attached to an Order. It is immutable once
// attached; the price is fixed at order creation time and never recomputed.
type Item struct {
	productID string
	quantity  int
	price     int

	guard guard.ConstructorGuard
}

// NewItem prices a requested order line. The spec must be valid and the unit
// price positive.
func NewItem(spec ItemSpec, price int) (Item, error) {
	if err := spec.Validate(); err != nil {
		return Item{}, err
	}

	if price <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}

	return Item{
		productID: spec.ProductID(),
		quantity:  spec.Quantity(),
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identifier of the line.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the unit count of the line.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price attached at order creation.
func (i Item) Price() int {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() int {
	return i.price * i.quantity
}
