package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// GetOrdersByStatusQueryHandler retrieves orders filtered by status.
type GetOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered reads.
func NewGetOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query. An unmatched status yields an empty slice.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.GetAllByStatus(ctx, query.Status())
}
