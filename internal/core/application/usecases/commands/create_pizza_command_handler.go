package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/pkg/errs"
)

// CreatePizzaCommandHandler handles the business logic for adding catalog
// entries: it enforces name uniqueness with a lookup, mints the identifier,
// and persists the validated aggregate.
//
// The uniqueness check is exact and case-sensitive; a name differing only by
// case is a different pizza.
type CreatePizzaCommandHandler struct {
	pizzaRepo ports.PizzaRepository
}

// NewCreatePizzaCommandHandler creates a handler for pizza creation.
func NewCreatePizzaCommandHandler(pizzaRepo ports.PizzaRepository) CreatePizzaCommandHandler {
	return CreatePizzaCommandHandler{pizzaRepo: pizzaRepo}
}

// Handle processes the create-pizza command and returns the stored aggregate
// with its assigned identifier.
func (h CreatePizzaCommandHandler) Handle(ctx context.Context, cmd CreatePizzaCommand) (*pizza.Pizza, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.pizzaRepo.GetByName(ctx, cmd.Name())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("pizza with name %q already exists", cmd.Name()),
		)
	}

	aggregate, err := pizza.NewPizza(
		kernel.NewID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Toppings(),
		cmd.SizeOptions(),
		cmd.Price(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.pizzaRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
