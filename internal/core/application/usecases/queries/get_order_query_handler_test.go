package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"paybook/internal/adapters/out/memory"
	"paybook/internal/core/application/usecases/commands"
	"paybook/internal/core/application/usecases/queries"
	"paybook/internal/core/domain/model/kernel"
	"paybook/internal/core/domain/model/order"
	"paybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeOrder draws an identifier from the store's sequence and inserts a
// Pending order the way the create command does.
func placeOrder(t *testing.T, store *memory.Store, userID string, quantities ...int) *order.Order {
	t.Helper()
	ctx := context.Background()

	specs := make([]order.ItemSpec, 0, len(quantities))
	for i, quantity := range quantities {
		spec, err := order.NewItemSpec(fmt.Sprintf("PROD-%03d", i+1), quantity)
		require.NoError(t, err)
		specs = append(specs, spec)
	}

	id, err := store.Next(ctx)
	require.NoError(t, err)
	o, err := order.NewOrder(id, userID, specs, 10000, time.Now())
	require.NoError(t, err)

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
	return o
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	stored := placeOrder(t, store, "USER-001", 2, 3)

	handler := queries.NewGetOrderQueryHandler(store)
	query, err := queries.NewGetOrderQuery(stored.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", resp.OrderID)
	assert.Equal(t, "USER-001", resp.UserID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 50000, resp.TotalAmount)
	assert.WithinDuration(t, stored.CreatedAt(), resp.CreatedAt, 0)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, queries.GetOrderItemResponse{ProductID: "PROD-001", Quantity: 2, Price: 10000}, resp.Items[0])
	assert.Equal(t, queries.GetOrderItemResponse{ProductID: "PROD-002", Quantity: 3, Price: 10000}, resp.Items[1])
}

func TestGetOrderQueryHandler_Handle_ReflectsCancellation(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	stored := placeOrder(t, store, "USER-001", 1)
	require.NoError(t, stored.Cancel())

	handler := queries.NewGetOrderQueryHandler(store)
	query, err := queries.NewGetOrderQuery(stored.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestGetOrderQueryHandler_Handle_UnknownID(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	handler := queries.NewGetOrderQueryHandler(store)

	id, err := kernel.NewOrderID(404)
	require.NoError(t, err)
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetOrderQueryHandler(memory.NewStore())

	_, err := handler.Handle(ctx, queries.GetOrderQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// Reads must never share mutable state with an in-flight cancellation: the
// query handler serves clones taken under the lock, so a reader observes
// either PENDING or CANCELLED, with the rest of the order intact.
func TestGetOrderQueryHandler_Handle_ConcurrentWithCancellation(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	handler := queries.NewGetOrderQueryHandler(store)
	var uowFactory commands.OrderUoWFactory = funcOrderUoWFactory(func() commands.OrderUoW {
		return memory.NewUnitOfWorkFactory(store).Create()
	})
	cancelHandler := commands.NewCancelOrderCommandHandler(uowFactory)

	for range 8 {
		stored := placeOrder(t, store, "USER-001", 2)
		query, err := queries.NewGetOrderQuery(stored.ID())
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			cmd, err := commands.NewCancelOrderCommand(stored.ID())
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := cancelHandler.Handle(ctx, cmd); err != nil {
				t.Error(err)
			}
		}()

		for reading := true; reading; {
			select {
			case <-done:
				reading = false
			default:
			}

			resp, err := handler.Handle(ctx, query)
			require.NoError(t, err)
			assert.Contains(t, []string{"PENDING", "CANCELLED"}, resp.Status)
			assert.Equal(t, 20000, resp.TotalAmount)
		}

		resp, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
	}
}
