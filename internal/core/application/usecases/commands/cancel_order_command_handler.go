package commands

import (
	"context"

	"pizzashop/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation as a hard delete.
type CancelOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(orderRepo ports.OrderRepository) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orderRepo: orderRepo}
}

// Handle processes the cancellation. The repository reports a not-found
// error when the id has no document.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepo.Delete(ctx, cmd.OrderID())
}
