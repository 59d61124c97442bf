package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order.
// Cancellation removes the order document entirely; it is not a status flip.
type CancelOrderCommand struct {
	orderID kernel.ID

	guard kernel.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with orderID.
func NewCancelOrderCommand(orderID kernel.ID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
