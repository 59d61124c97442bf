package commands

import (
	"context"

	"pizzashop/internal/core/ports"
)

// DeletePizzaCommandHandler handles catalog entry removal.
type DeletePizzaCommandHandler struct {
	pizzaRepo ports.PizzaRepository
}

// NewDeletePizzaCommandHandler creates a handler for pizza removal.
func NewDeletePizzaCommandHandler(pizzaRepo ports.PizzaRepository) DeletePizzaCommandHandler {
	return DeletePizzaCommandHandler{pizzaRepo: pizzaRepo}
}

// Handle processes the delete-pizza command. The repository reports a
// not-found error when the id has no document.
func (h DeletePizzaCommandHandler) Handle(ctx context.Context, cmd DeletePizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.pizzaRepo.Delete(ctx, cmd.PizzaID())
}
