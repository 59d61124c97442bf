package commands

import (
	"context"

	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
)

// UpdatePizzaCommandHandler handles wholesale replacement of a catalog entry.
//
// The handler verifies the target exists, then overwrites the document with
// the submitted input. Name uniqueness is not re-checked against other
// pizzas on update; only creation enforces it.
type UpdatePizzaCommandHandler struct {
	pizzaRepo ports.PizzaRepository
}

// NewUpdatePizzaCommandHandler creates a handler for pizza replacement.
func NewUpdatePizzaCommandHandler(pizzaRepo ports.PizzaRepository) UpdatePizzaCommandHandler {
	return UpdatePizzaCommandHandler{pizzaRepo: pizzaRepo}
}

// Handle processes the update-pizza command and returns the stored aggregate.
func (h UpdatePizzaCommandHandler) Handle(ctx context.Context, cmd UpdatePizzaCommand) (*pizza.Pizza, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.pizzaRepo.Get(ctx, cmd.PizzaID()); err != nil {
		return nil, err
	}

	input := cmd.Input()
	aggregate, err := pizza.NewPizza(
		cmd.PizzaID(),
		input.Name(),
		input.Description(),
		input.Toppings(),
		input.SizeOptions(),
		input.Price(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.pizzaRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
