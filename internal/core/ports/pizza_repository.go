// Package ports defines the persistence contracts consumed by the application
// layer. The backing document store is an external collaborator: adapters
// implement these interfaces over independent documents keyed by opaque id,
// with no transactions and no joins. All cross-document consistency is
// enforced by the command handlers.
package ports

import (
	"context"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pizza"
)

// PizzaRepository defines the persistence contract for catalog entries.
type PizzaRepository interface {
	// GetAll retrieves every pizza in the catalog. An empty catalog yields
	// an empty slice, not an error.
	GetAll(ctx context.Context) ([]*pizza.Pizza, error)

	// Get retrieves a pizza by identifier. Returns an ObjectNotFoundError
	// when no document exists for the id.
	Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error)

	// GetByName retrieves a pizza by exact, case-sensitive name match.
	// Returns an ObjectNotFoundError when no pizza carries the name;
	// used by the create-pizza handler for the uniqueness check.
	GetByName(ctx context.Context, name string) (*pizza.Pizza, error)

	// Add persists a new pizza document under its identifier.
	Add(ctx context.Context, aggregate *pizza.Pizza) error

	// Update replaces the stored document wholesale. Returns an
	// ObjectNotFoundError when the id does not exist.
	Update(ctx context.Context, aggregate *pizza.Pizza) error

	// Delete removes the document. Returns an ObjectNotFoundError when the
	// id does not exist.
	Delete(ctx context.Context, id kernel.ID) error
}
