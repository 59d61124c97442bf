package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// The aggregate enforces the documented transition chain
// (pending -> preparing -> ready -> delivered, cancellation from any
// non-terminal status); a disallowed transition fails without a write.
type UpdateOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(orderRepo ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orderRepo: orderRepo}
}

// Handle processes the status update and returns the stored order.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
