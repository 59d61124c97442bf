package order

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/errs"
)

// MaxCustomerNameLength bounds the optional customer name.
const MaxCustomerNameLength = 100

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// Customer carries the optional contact details attached to an order.
// All fields may be empty; non-empty fields are validated.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Order represents a customer purchase referencing one or more catalog
// pizzas. It is the aggregate root for the order lifecycle and maintains
// the following invariants:
//   - Must have a valid identifier
//   - References at least one pizza (an order with zero pizzas is never valid)
//   - Status is one of the five valid statuses
//   - Timestamp is set by the server at creation
//   - Customer contact fields, when present, are well-formed
//
// Whether the referenced pizzas exist in the catalog is a cross-document rule
// and is enforced by the create-order command handler, not here.
type Order struct {
	id                   kernel.ID
	pizzaIDs             []kernel.ID
	status               Status
	timestamp            time.Time
	customer             Customer
	additionalAttributes map[string]string

	isConstructed bool
}

// NewOrder creates an Order with full validation. The timestamp is the
// server-side creation time; any client-supplied value has already been
// discarded by the time this constructor runs.
func NewOrder(
	id kernel.ID,
	pizzaIDs []kernel.ID,
	status Status,
	timestamp time.Time,
	customer Customer,
	additionalAttributes map[string]string,
) (*Order, error) {
	o := &Order{
		additionalAttributes: additionalAttributes,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPizzaIDs(pizzaIDs),
		o.setStatus(status),
		o.setTimestamp(timestamp),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from a stored document.
func RestoreOrder(
	id kernel.ID,
	pizzaIDs []kernel.ID,
	status Status,
	timestamp time.Time,
	customer Customer,
	additionalAttributes map[string]string,
) (*Order, error) {
	return NewOrder(id, pizzaIDs, status, timestamp, customer, additionalAttributes)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// PizzaIDs returns the ordered list of referenced pizza identifiers.
func (o *Order) PizzaIDs() []kernel.ID {
	return o.pizzaIDs
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Timestamp returns the server-side creation time.
func (o *Order) Timestamp() time.Time {
	return o.timestamp
}

// Customer returns the optional customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// AdditionalAttributes returns the free-form metadata attached to the order.
func (o *Order) AdditionalAttributes() map[string]string {
	return o.additionalAttributes
}

// ChangeStatus moves the order to next, enforcing the status transition
// chain. The order itself is mutated only when the transition is allowed.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPizzaIDs(pizzaIDs []kernel.ID) error {
	if len(pizzaIDs) == 0 {
		return errs.NewValueIsRequiredErrorWithCause(
			"pizzas",
			errors.New("at least one pizza is required"),
		)
	}
	for _, id := range pizzaIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.pizzaIDs = pizzaIDs
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	o.timestamp = timestamp
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if len(customer.Name) > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", len(customer.Name), 0, MaxCustomerNameLength)
	}
	if customer.Email != "" && !emailPattern.MatchString(customer.Email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerEmail",
			fmt.Errorf("%q is not a valid email address", customer.Email),
		)
	}
	if customer.Phone != "" && !phonePattern.MatchString(customer.Phone) {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerPhone",
			fmt.Errorf("%q is not a valid phone number", customer.Phone),
		)
	}
	o.customer = customer
	return nil
}
