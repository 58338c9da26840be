package http

import (
	"time"

	"paybook/internal/core/application/usecases/commands"
	"paybook/internal/core/application/usecases/queries"
	"paybook/internal/core/domain/model/order"
)

// CreateOrderRequest is the wire shape of an order placement request.
// Optional scalar fields are pointers so an absent field can be told apart
// from its zero value.
type CreateOrderRequest struct {
	UserID           *string                  `json:"userId"`
	Items            []CreateOrderItemRequest `json:"items"`
	DeliveryAddress  *string                  `json:"deliveryAddress"`
	CouponID         *string                  `json:"couponId"`
	PointAmountToUse *int                     `json:"pointAmountToUse"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	ProductID *string `json:"productId"`
	Quantity  *int    `json:"quantity"`
}

// OrderItemResponse is one priced order line in a response.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

// OrderResponse is the wire shape of an order, used for creation, reads and
// cancellations alike.
type OrderResponse struct {
	OrderID     string              `json:"orderId"`
	UserID      string              `json:"userId"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount int                 `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ErrorResponse is the uniform error body for every failure.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// toCommandItems converts wire items to command inputs. Absent fields become
// their zero values and fail the command's own validation, which keeps the
// reported field names consistent.
func toCommandItems(items []CreateOrderItemRequest) []commands.OrderItemInput {
	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.OrderItemInput{
			ProductID: derefString(item.ProductID),
			Quantity:  derefInt(item.Quantity),
		})
	}
	return inputs
}

func fromOrder(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderResponse{
		OrderID:     o.ID().String(),
		UserID:      o.UserID(),
		Items:       items,
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
}

func fromQueryResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return OrderResponse{
		OrderID:     resp.OrderID,
		UserID:      resp.UserID,
		Items:       items,
		TotalAmount: resp.TotalAmount,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
}
