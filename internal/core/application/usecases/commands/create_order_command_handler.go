package commands

import (
	"context"
	"time"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
//
// Every referenced pizza id is resolved against the catalog before anything
// is written: if any id does not resolve, the whole operation fails with the
// not-found error identifying that pizza, and nothing is persisted. There is
// no transaction spanning the validation and the write, so a pizza deleted
// between the two is an accepted race.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(orderRepo, pizzaRepo)
//	cmd, _ := NewCreateOrderCommand([]string{pizzaID}, "", order.Customer{}, nil)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	pizzaRepo ports.PizzaRepository
	now       func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orderRepo ports.OrderRepository,
	pizzaRepo ports.PizzaRepository,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
		pizzaRepo: pizzaRepo,
		now:       time.Now,
	}
}

// Handle processes the create-order command: resolves every pizza reference,
// stamps the server-side timestamp, persists, and returns the stored order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for _, pizzaID := range cmd.PizzaIDs() {
		if _, err := h.pizzaRepo.Get(ctx, pizzaID); err != nil {
			return nil, err
		}
	}

	aggregate, err := order.NewOrder(
		kernel.NewID(),
		cmd.PizzaIDs(),
		cmd.Status(),
		h.now().UTC(),
		cmd.Customer(),
		cmd.AdditionalAttributes(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
