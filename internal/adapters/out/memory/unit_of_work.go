package memory

import (
	"context"
	"errors"

	"paybook/internal/core/domain/model/kernel"
	"paybook/internal/core/domain/model/order"
	"paybook/internal/core/ports"
	"paybook/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit when the unit of work was
// never begun or was already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to one registry.
// Each business operation gets a fresh unit of work instance; instances must
// not be shared between goroutines.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for registry-backed unit of work
// instances. The provided store is shared by all created instances.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork gives a command handler exclusive access to the registry for
// the span of one business operation.
//
// Begin takes the registry's write lock; Commit and Rollback release it.
// There is no change log to unwind: atomicity comes from exclusion, so a
// lookup-transition-update sequence either runs entirely alone or not at
// all. Rollback after Commit is a no-op, which keeps an unconditional
// deferred Rollback safe.
type UnitOfWork struct {
	store  *Store
	active bool
	done   bool
}

// Begin acquires exclusive access to the registry. Calling Begin on an
// already active unit of work is a no-op; a finished one cannot be reused.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	if uow.done {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit finishes the business operation and releases exclusive access.
// Mutations performed through the repository are already visible in the
// registry at this point; Commit only ends the exclusive section.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active = false
	uow.done = true
	uow.store.mu.Unlock()
	return nil
}

// Rollback releases exclusive access without marking the operation as
// succeeded. Safe to call after Commit or on a never-begun instance.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.active = false
	uow.done = true
	uow.store.mu.Unlock()
	return nil
}

// OrderRepository returns the repository bound to this unit of work.
// Must only be used between Begin and Commit/Rollback.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{store: uow.store}
}

// orderRepository mutates the registry map directly. It assumes the
// enclosing unit of work holds the write lock.
type orderRepository struct {
	store *Store
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.store.orders[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", errors.New("order "+key+" already exists"))
	}

	r.store.orders[key] = aggregate
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.store.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	r.store.orders[key] = aggregate
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return o, nil
}
