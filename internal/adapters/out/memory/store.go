// Package memory provides the in-process order registry and a Unit of Work
// implementation on top of it.
//
// The registry keeps every order of the process lifetime in a map guarded by
// a single read-write mutex. Commands take the write lock through the Unit of
// Work, so a whole lookup-transition-update sequence observes and mutates the
// registry exclusively. Queries read under the shared lock and never block
// each other.
//
// Nothing is evicted and nothing survives a restart; the registry is reset
// whenever the process starts.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"paybook/internal/core/domain/model/kernel"
	"paybook/internal/core/domain/model/order"
)

// Store is the in-process order registry. It owns the order map, the lock
// that serializes writers, and the identifier sequence.
//
// A single Store instance is shared by every command handler, query handler
// and job of the process. The zero value is not usable; create instances via
// NewStore.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	seq    atomic.Uint64
}

// NewStore creates an empty registry with the identifier sequence at zero,
// so the first order drawn is ORD-000001.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]*order.Order),
	}
}

// Next draws the next order identifier. Implements ports.OrderSequence.
//
// The sequence is atomic and strictly monotonic: concurrent placements each
// receive a distinct identifier and no value is ever reused, even when the
// order it was drawn for fails to be stored.
func (s *Store) Next(_ context.Context) (kernel.OrderID, error) {
	return kernel.NewOrderID(s.seq.Add(1))
}

// Issued reports how many identifiers the sequence has handed out so far.
func (s *Store) Issued() uint64 {
	return s.seq.Load()
}

// Find looks up an order by identifier under the shared lock. The returned
// order is a clone taken inside the critical section: commands cancel the
// stored aggregate in place under the write lock, so the live pointer must
// never leave it.
func (s *Store) Find(id kernel.OrderID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id.String()]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// Stats counts stored orders per status under the shared lock.
func (s *Store) Stats() (pending int, cancelled int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		switch o.Status() {
		case order.Pending:
			pending++
		case order.Cancelled:
			cancelled++
		}
	}
	return pending, cancelled
}

// Len reports the number of stored orders under the shared lock.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
