package queries

import (
	"errors"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/errs"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the orders matching a status filter.
//
// The filter value must be non-empty but is deliberately not validated
// against the status enum: filtering by a status no order carries (or that
// does not exist at all) succeeds with an empty result.
type GetOrdersByStatusQuery struct {
	status string

	guard kernel.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders with the given status.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	if status == "" {
		return GetOrdersByStatusQuery{}, errs.NewValueIsRequiredError("status")
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the raw filter value.
func (q GetOrdersByStatusQuery) Status() string {
	return q.status
}
