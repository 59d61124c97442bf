package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/pkg/errs"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
//
// The constructor performs the fail-fast checks the lifecycle requires before
// any I/O: the pizza list must be non-empty, the status (when supplied) must
// parse, and customer contact fields must be well-formed. Whether the
// referenced pizzas exist is checked by the handler against the catalog.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]string{"p1", "p2"}, "",
//	    order.Customer{Name: "Ada"}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	pizzaIDs             []kernel.ID
	status               order.Status
	customer             order.Customer
	additionalAttributes map[string]string

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. An empty status
// defaults to pending. Any client-supplied timestamp has no representation
// here; the handler stamps the server time at persistence.
func NewCreateOrderCommand(
	pizzaIDs []string,
	status string,
	customer order.Customer,
	additionalAttributes map[string]string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer:             customer,
		additionalAttributes: additionalAttributes,
		guard:                kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPizzaIDs(pizzaIDs),
		cmd.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// PizzaIDs returns the referenced pizza identifiers in request order.
func (c CreateOrderCommand) PizzaIDs() []kernel.ID {
	return c.pizzaIDs
}

// Status returns the parsed status, pending when none was supplied.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Customer returns the optional customer contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// AdditionalAttributes returns the free-form metadata for the order.
func (c CreateOrderCommand) AdditionalAttributes() map[string]string {
	return c.additionalAttributes
}

func (c *CreateOrderCommand) setPizzaIDs(pizzaIDs []string) error {
	if len(pizzaIDs) == 0 {
		return errs.NewValueIsRequiredErrorWithCause(
			"pizzas",
			errors.New("at least one pizza is required"),
		)
	}

	ids := make([]kernel.ID, 0, len(pizzaIDs))
	for _, raw := range pizzaIDs {
		id, err := kernel.IDFromString(raw)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	c.pizzaIDs = ids
	return nil
}

func (c *CreateOrderCommand) setStatus(status string) error {
	parsed, err := order.ParseStatusOrDefault(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
