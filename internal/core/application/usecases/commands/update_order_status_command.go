package commands

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The raw status is parsed here, so an empty or unknown
// value fails before any store access.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	newStatus order.Status

	guard kernel.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set the status of the
// order with orderID to newStatus.
func NewUpdateOrderStatusCommand(orderID kernel.ID, newStatus string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// NewStatus returns the parsed target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus string) error {
	parsed, err := order.ParseStatus(newStatus)
	if err != nil {
		return err
	}
	c.newStatus = parsed
	return nil
}
