package pizza

import (
	"errors"
	"fmt"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/pkg/errs"
)

// Field constraints for catalog entries.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxToppingLength     = 50
	MinPrice             = 0.01
)

// ErrPizzaIsNotConstructed is returned when a Pizza instance was not created
// through NewPizza or RestorePizza. This ensures all pizzas are validated.
var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza or RestorePizza")

// Pizza represents a catalog entry. It is the aggregate root for the pizza
// side of the shop and maintains the following invariants:
//   - Must have a valid identifier
//   - Name is non-empty and at most MaxNameLength characters
//   - Description is non-empty and at most MaxDescriptionLength characters
//   - At least one topping; each at most MaxToppingLength characters
//   - At least one size option; each one of small, medium, large
//   - Price is at least MinPrice
//
// Name uniqueness across the catalog is a cross-document rule and is enforced
// by the create-pizza command handler, not here.
type Pizza struct {
	id          kernel.ID
	name        string
	description string
	toppings    []string
	sizeOptions []string
	price       float64

	isConstructed bool
}

// NewPizza creates a Pizza with full validation. This is the only way to
// create a valid Pizza for persistence.
func NewPizza(
	id kernel.ID,
	name string,
	description string,
	toppings []string,
	sizeOptions []string,
	price float64,
) (*Pizza, error) {
	p := &Pizza{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setToppings(toppings),
		p.setSizeOptions(sizeOptions),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza rehydrates a Pizza from a stored document. The same invariants
// apply: a document that no longer satisfies them is rejected rather than
// silently returned.
func RestorePizza(
	id kernel.ID,
	name string,
	description string,
	toppings []string,
	sizeOptions []string,
	price float64,
) (*Pizza, error) {
	return NewPizza(id, name, description, toppings, sizeOptions, price)
}

// Validate ensures the Pizza instance was properly constructed.
func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}
	return nil
}

// IsEqual compares two pizzas by identifier.
func (p *Pizza) IsEqual(other *Pizza) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pizza's identifier.
func (p *Pizza) ID() kernel.ID {
	return p.id
}

// Name returns the pizza's catalog name.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the pizza's description.
func (p *Pizza) Description() string {
	return p.description
}

// Toppings returns the ordered topping list.
func (p *Pizza) Toppings() []string {
	return p.toppings
}

// SizeOptions returns the ordered size option list.
func (p *Pizza) SizeOptions() []string {
	return p.sizeOptions
}

// Price returns the pizza's price.
func (p *Pizza) Price() float64 {
	return p.price
}

func (p *Pizza) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Pizza) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 1, MaxDescriptionLength)
	}
	p.description = description
	return nil
}

func (p *Pizza) setToppings(toppings []string) error {
	if len(toppings) == 0 {
		return errs.NewValueIsRequiredError("toppings")
	}
	for _, topping := range toppings {
		if len(topping) > MaxToppingLength {
			return errs.NewValueIsOutOfRangeError("topping length", len(topping), 1, MaxToppingLength)
		}
	}
	p.toppings = toppings
	return nil
}

func (p *Pizza) setSizeOptions(sizeOptions []string) error {
	if len(sizeOptions) == 0 {
		return errs.NewValueIsRequiredError("sizeOptions")
	}
	for _, size := range sizeOptions {
		if !isValidSize(size) {
			return errs.NewValueIsInvalidErrorWithCause(
				"sizeOptions",
				fmt.Errorf("%q is not one of small, medium, large", size),
			)
		}
	}
	p.sizeOptions = sizeOptions
	return nil
}

func (p *Pizza) setPrice(price float64) error {
	if price < MinPrice {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%g is less than the minimum price %g", price, MinPrice),
		)
	}
	p.price = price
	return nil
}

func isValidSize(size string) bool {
	switch size {
	case "small", "medium", "large":
		return true
	default:
		return false
	}
}
