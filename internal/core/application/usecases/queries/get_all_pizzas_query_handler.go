package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
)

// GetAllPizzasQueryHandler retrieves every catalog entry.
type GetAllPizzasQueryHandler struct {
	pizzaRepo ports.PizzaRepository
}

// NewGetAllPizzasQueryHandler creates a handler for full-catalog reads.
func NewGetAllPizzasQueryHandler(pizzaRepo ports.PizzaRepository) GetAllPizzasQueryHandler {
	return GetAllPizzasQueryHandler{pizzaRepo: pizzaRepo}
}

// Handle executes the query.
func (h GetAllPizzasQueryHandler) Handle(ctx context.Context, query GetAllPizzasQuery) ([]*pizza.Pizza, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.pizzaRepo.GetAll(ctx)
}
