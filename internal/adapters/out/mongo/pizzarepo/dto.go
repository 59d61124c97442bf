// Package pizzarepo provides data transfer objects and mapping functions for
// pizza persistence. It implements the repository pattern for the pizza
// aggregate over a MongoDB collection, handling the conversion between domain
// entities and document representations.
package pizzarepo

import (
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pizza"
)

// PizzaDTO represents the document structure for persisting pizza aggregates.
// The aggregate identifier doubles as the document key.
type PizzaDTO struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Description string   `bson:"description"`
	Toppings    []string `bson:"toppings"`
	SizeOptions []string `bson:"sizeOptions"`
	Price       float64  `bson:"price"`
}

// fromDomain converts a pizza aggregate to its document representation.
func fromDomain(aggregate *pizza.Pizza) PizzaDTO {
	return PizzaDTO{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Toppings:    aggregate.Toppings(),
		SizeOptions: aggregate.SizeOptions(),
		Price:       aggregate.Price(),
	}
}

// toDomain converts a document to a pizza aggregate using RestorePizza.
func toDomain(dto PizzaDTO) (*pizza.Pizza, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return pizza.RestorePizza(
		id,
		dto.Name,
		dto.Description,
		dto.Toppings,
		dto.SizeOptions,
		dto.Price,
	)
}
