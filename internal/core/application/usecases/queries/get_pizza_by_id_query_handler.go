package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
)

// GetPizzaByIDQueryHandler retrieves a single catalog entry.
// A missing id surfaces as the repository's not-found error, never as a
// generic failure.
type GetPizzaByIDQueryHandler struct {
	pizzaRepo ports.PizzaRepository
}

// NewGetPizzaByIDQueryHandler creates a handler for single-pizza reads.
func NewGetPizzaByIDQueryHandler(pizzaRepo ports.PizzaRepository) GetPizzaByIDQueryHandler {
	return GetPizzaByIDQueryHandler{pizzaRepo: pizzaRepo}
}

// Handle executes the query.
func (h GetPizzaByIDQueryHandler) Handle(ctx context.Context, query GetPizzaByIDQuery) (*pizza.Pizza, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.pizzaRepo.Get(ctx, query.PizzaID())
}
