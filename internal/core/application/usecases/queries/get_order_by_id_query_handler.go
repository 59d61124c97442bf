package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// GetOrderByIDQueryHandler retrieves a single order.
// A missing id surfaces as the repository's not-found error.
type GetOrderByIDQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderByIDQueryHandler creates a handler for single-order reads.
func NewGetOrderByIDQueryHandler(orderRepo ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.Get(ctx, query.OrderID())
}
