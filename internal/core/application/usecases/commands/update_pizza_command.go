package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
)

var ErrUpdatePizzaCommandIsNotConstructed = errors.New(
	"UpdatePizzaCommand must be created via NewUpdatePizzaCommand constructor",
)

// UpdatePizzaCommand represents a request to replace a catalog entry
// wholesale. There is no partial-field patching: the stored document becomes
// exactly the submitted input under the existing identifier.
type UpdatePizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID kernel.ID
	input   CreatePizzaCommand

	guard kernel.ConstructorGuard
}

// NewUpdatePizzaCommand creates a command to replace the pizza stored under
// pizzaID with the given input fields.
func NewUpdatePizzaCommand(
	pizzaID kernel.ID,
	name string,
	description string,
	toppings []string,
	sizeOptions []string,
	price float64,
) (UpdatePizzaCommand, error) {
	if err := pizzaID.Validate(); err != nil {
		return UpdatePizzaCommand{}, err
	}

	input, err := NewCreatePizzaCommand(name, description, toppings, sizeOptions, price)
	if err != nil {
		return UpdatePizzaCommand{}, err
	}

	return UpdatePizzaCommand{
		pizzaID: pizzaID,
		input:   input,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePizzaCommandIsNotConstructed)
}

// PizzaID returns the identifier of the pizza being replaced.
func (c UpdatePizzaCommand) PizzaID() kernel.ID {
	return c.pizzaID
}

// Input returns the replacement field values.
func (c UpdatePizzaCommand) Input() CreatePizzaCommand {
	return c.input
}
