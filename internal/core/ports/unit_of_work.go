package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the registry.
// Begin acquires exclusive access to the registry so that read-modify-write
// sequences (notably cancel) are atomic with respect to concurrent commands.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction, acquiring exclusive registry access.
	Begin(ctx context.Context) error

	// Commit finishes the transaction and releases the registry.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback abandons the transaction and releases the registry.
	// Calling Rollback after Commit is a no-op, enabling the
	// defer-rollback idiom.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction. The repository must only be used between Begin and
	// Commit/Rollback.
	OrderRepository() OrderRepository
}
