package cmd

import (
	"paybook/internal/adapters/out/memory"
	"paybook/internal/adapters/out/stub"
	"paybook/internal/core/application/usecases/commands"
	"paybook/internal/core/application/usecases/queries"
	"paybook/internal/core/domain/services"
)

type CompositionRoot struct {
	store      *memory.Store
	uowFactory memory.UnitOfWorkFactory
	pricer     *stub.PricingGateway
	policy     services.PlacementPolicy
}

func NewCompositionRoot(configs Config) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		store:      store,
		uowFactory: *memory.NewUnitOfWorkFactory(store),
		pricer:     stub.NewPricingGateway(configs.UnitPrice),
		policy: services.NewPlacementPolicy(
			stub.NewStockGateway(),
			stub.NewCouponGateway(),
			stub.NewPointsGateway(),
		),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.store, c.pricer, c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.store)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
