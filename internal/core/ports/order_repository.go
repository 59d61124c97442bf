package ports

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// GetAll retrieves every order. An empty result is a valid outcome.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByStatus retrieves the orders whose status matches the given
	// wire representation. A status that matches nothing yields an empty
	// slice; the value is not validated against the status enum here.
	GetAllByStatus(ctx context.Context, status string) ([]*order.Order, error)

	// Get retrieves an order by identifier. Returns an ObjectNotFoundError
	// when no document exists for the id.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Add persists a new order document under its identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored document wholesale. Returns an
	// ObjectNotFoundError when the id does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the document. Returns an ObjectNotFoundError when the
	// id does not exist.
	Delete(ctx context.Context, id kernel.ID) error
}
