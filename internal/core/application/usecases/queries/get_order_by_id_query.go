package queries

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order by identifier.
type GetOrderByIDQuery struct {
	orderID kernel.ID

	guard kernel.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the order with orderID.
func NewGetOrderByIDQuery(orderID kernel.ID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested identifier.
func (q GetOrderByIDQuery) OrderID() kernel.ID {
	return q.orderID
}
