package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves every order.
type GetAllOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for full order reads.
func NewGetAllOrdersQueryHandler(orderRepo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.GetAll(ctx)
}
