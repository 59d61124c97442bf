package queries

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
)

var ErrGetAllPizzasQueryIsNotConstructed = errors.New(
	"GetAllPizzasQuery must be created via NewGetAllPizzasQuery constructor",
)

// GetAllPizzasQuery retrieves the full catalog. Parameterless; an empty
// catalog is a valid, non-error outcome.
type GetAllPizzasQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllPizzasQuery creates a query for the full catalog.
func NewGetAllPizzasQuery() GetAllPizzasQuery {
	return GetAllPizzasQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPizzasQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPizzasQueryIsNotConstructed)
}
