// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate over a MongoDB collection, handling the conversion between domain
// entities and document representations.
package orderrepo

import (
	"time"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
)

// OrderDTO represents the document structure for persisting order aggregates.
// Pizza references are stored as plain id strings; there are no joins, the
// command handlers enforce referential checks before writing.
type OrderDTO struct {
	ID                   string            `bson:"_id"`
	PizzaIDs             []string          `bson:"pizzaIds"`
	Status               string            `bson:"status"`
	Timestamp            time.Time         `bson:"timestamp"`
	Customer             CustomerDTO       `bson:"customer"`
	AdditionalAttributes map[string]string `bson:"additionalAttributes,omitempty"`
}

// CustomerDTO represents the embedded customer contact details.
type CustomerDTO struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Phone string `bson:"phone"`
}

// fromDomain converts an order aggregate to its document representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	pizzaIDs := make([]string, 0, len(aggregate.PizzaIDs()))
	for _, id := range aggregate.PizzaIDs() {
		pizzaIDs = append(pizzaIDs, id.String())
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:        aggregate.ID().String(),
		PizzaIDs:  pizzaIDs,
		Status:    aggregate.Status().String(),
		Timestamp: aggregate.Timestamp(),
		Customer: CustomerDTO{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		AdditionalAttributes: aggregate.AdditionalAttributes(),
	}
}

// toDomain converts a document to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	pizzaIDs := make([]kernel.ID, 0, len(dto.PizzaIDs))
	for _, raw := range dto.PizzaIDs {
		pizzaID, idErr := kernel.IDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		pizzaIDs = append(pizzaIDs, pizzaID)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		pizzaIDs,
		status,
		dto.Timestamp,
		order.Customer{
			Name:  dto.Customer.Name,
			Email: dto.Customer.Email,
			Phone: dto.Customer.Phone,
		},
		dto.AdditionalAttributes,
	)
}
