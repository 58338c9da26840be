// Package http exposes the order operations over HTTP using echo.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"paybook/internal/core/application/usecases/commands"
	"paybook/internal/core/application/usecases/queries"
	"paybook/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the HTTP surface.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// RegisterRoutes attaches the order routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders/:orderId", s.GetOrder)
	e.PATCH("/api/orders/:orderId/cancel", s.CancelOrder)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		status, body := classifyBind(err)
		return ctx.JSON(status, body)
	}

	cmd, err := commands.NewCreateOrderCommand(
		derefString(req.UserID),
		toCommandItems(req.Items),
		derefString(req.DeliveryAddress),
		derefString(req.CouponID),
		derefInt(req.PointAmountToUse),
	)
	if err != nil {
		status, body := classify(err)
		return ctx.JSON(status, body)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status, body := classify(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusCreated, fromOrder(created))
}

// GetOrder handles GET /api/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		// An identifier that cannot exist is indistinguishable from an
		// absent one.
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    codeOrderNotFound,
			Message: "order " + ctx.Param("orderId") + " not found",
		})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		status, body := classify(err)
		return ctx.JSON(status, body)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status, body := classify(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponse(resp))
}

// CancelOrder handles PATCH /api/orders/:orderId/cancel - cancels one order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    codeOrderNotFound,
			Message: "order " + ctx.Param("orderId") + " not found",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		status, body := classify(err)
		return ctx.JSON(status, body)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status, body := classify(err)
		return ctx.JSON(status, body)
	}

	return ctx.JSON(http.StatusOK, fromOrder(cancelled))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
