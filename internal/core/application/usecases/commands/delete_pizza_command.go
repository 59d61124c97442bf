package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
)

var ErrDeletePizzaCommandIsNotConstructed = errors.New(
	"DeletePizzaCommand must be created via NewDeletePizzaCommand constructor",
)

// DeletePizzaCommand represents a request to remove a catalog entry.
// Orders referencing the pizza are left untouched; orphaned references are
// permitted.
type DeletePizzaCommand struct {
	pizzaID kernel.ID

	guard kernel.ConstructorGuard
}

// NewDeletePizzaCommand creates a command to remove the pizza with pizzaID.
func NewDeletePizzaCommand(pizzaID kernel.ID) (DeletePizzaCommand, error) {
	if err := pizzaID.Validate(); err != nil {
		return DeletePizzaCommand{}, err
	}

	return DeletePizzaCommand{
		pizzaID: pizzaID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePizzaCommand) Validate() error {
	return c.guard.Validate(ErrDeletePizzaCommandIsNotConstructed)
}

// PizzaID returns the identifier of the pizza being removed.
func (c DeletePizzaCommand) PizzaID() kernel.ID {
	return c.pizzaID
}
