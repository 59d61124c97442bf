package queries

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
)

var ErrGetPizzaByIDQueryIsNotConstructed = errors.New(
	"GetPizzaByIDQuery must be created via NewGetPizzaByIDQuery constructor",
)

// GetPizzaByIDQuery retrieves a single catalog entry by identifier.
type GetPizzaByIDQuery struct {
	pizzaID kernel.ID

	guard kernel.ConstructorGuard
}

// NewGetPizzaByIDQuery creates a query for the pizza with pizzaID.
func NewGetPizzaByIDQuery(pizzaID kernel.ID) (GetPizzaByIDQuery, error) {
	if err := pizzaID.Validate(); err != nil {
		return GetPizzaByIDQuery{}, err
	}

	return GetPizzaByIDQuery{
		pizzaID: pizzaID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPizzaByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetPizzaByIDQueryIsNotConstructed)
}

// PizzaID returns the requested identifier.
func (q GetPizzaByIDQuery) PizzaID() kernel.ID {
	return q.pizzaID
}
