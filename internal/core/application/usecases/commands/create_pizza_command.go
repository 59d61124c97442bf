package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/errs"
)

var ErrCreatePizzaCommandIsNotConstructed = errors.New(
	"CreatePizzaCommand must be created via NewCreatePizzaCommand constructor",
)

// CreatePizzaCommand represents a request to add a new pizza to the catalog.
//
// Example:
//
//	cmd, err := NewCreatePizzaCommand("Margherita", "classic",
//	    []string{"tomato", "mozzarella"}, []string{"small", "medium", "large"}, 12.99)
//	if err != nil {
//	    return fmt.Errorf("invalid pizza data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreatePizzaCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	toppings    []string
	sizeOptions []string
	price       float64

	guard kernel.ConstructorGuard
}

// NewCreatePizzaCommand creates a command to add a catalog entry.
// Performs fail-fast required-field checks; the full field constraints are
// enforced by the Pizza constructor inside the handler.
func NewCreatePizzaCommand(
	name string,
	description string,
	toppings []string,
	sizeOptions []string,
	price float64,
) (CreatePizzaCommand, error) {
	cmd := CreatePizzaCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setDescription(description),
		cmd.setToppings(toppings),
		cmd.setSizeOptions(sizeOptions),
		cmd.setPrice(price),
	); err != nil {
		return CreatePizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
}

// Name returns the catalog name for the new pizza.
func (c CreatePizzaCommand) Name() string {
	return c.name
}

// Description returns the description for the new pizza.
func (c CreatePizzaCommand) Description() string {
	return c.description
}

// Toppings returns the ordered topping list.
func (c CreatePizzaCommand) Toppings() []string {
	return c.toppings
}

// SizeOptions returns the ordered size option list.
func (c CreatePizzaCommand) SizeOptions() []string {
	return c.sizeOptions
}

// Price returns the price for the new pizza.
func (c CreatePizzaCommand) Price() float64 {
	return c.price
}

func (c *CreatePizzaCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreatePizzaCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *CreatePizzaCommand) setToppings(toppings []string) error {
	if len(toppings) == 0 {
		return errs.NewValueIsRequiredError("toppings")
	}
	c.toppings = toppings
	return nil
}

func (c *CreatePizzaCommand) setSizeOptions(sizeOptions []string) error {
	if len(sizeOptions) == 0 {
		return errs.NewValueIsRequiredError("sizeOptions")
	}
	c.sizeOptions = sizeOptions
	return nil
}

func (c *CreatePizzaCommand) setPrice(price float64) error {
	if price == 0 {
		return errs.NewValueIsRequiredError("price")
	}
	c.price = price
	return nil
}
