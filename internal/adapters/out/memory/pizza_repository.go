// Package memory provides in-memory implementations of the persistence ports.
// The repositories hold aggregates in maps guarded by a read-write mutex and
// are used for local development and the end-to-end HTTP tests, where spinning
// up a real document store is unnecessary.
package memory

import (
	"context"
	"sort"
	"sync"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/pkg/errs"
)

// PizzaRepository is an in-memory PizzaRepository implementation.
type PizzaRepository struct {
	mu    sync.RWMutex
	items map[string]*pizza.Pizza
}

// NewPizzaRepository creates an empty in-memory pizza repository.
func NewPizzaRepository() *PizzaRepository {
	return &PizzaRepository{
		items: make(map[string]*pizza.Pizza),
	}
}

// GetAll returns every pizza sorted by name for stable listings.
func (r *PizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*pizza.Pizza, 0, len(r.items))
	for _, p := range r.items {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// Get returns the pizza stored under id.
func (r *PizzaRepository) Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pizza", id.String())
	}
	return p, nil
}

// GetByName returns the pizza with the exact, case-sensitive name.
func (r *PizzaRepository) GetByName(ctx context.Context, name string) (*pizza.Pizza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pizza", name)
}

// Add stores a new pizza under its identifier.
func (r *PizzaRepository) Add(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[aggregate.ID().String()] = aggregate
	return nil
}

// Update replaces the stored pizza wholesale.
func (r *PizzaRepository) Update(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, ok := r.items[key]; !ok {
		return errs.NewObjectNotFoundError("pizza", key)
	}
	r.items[key] = aggregate
	return nil
}

// Delete removes the pizza stored under id.
func (r *PizzaRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.items[key]; !ok {
		return errs.NewObjectNotFoundError("pizza", key)
	}
	delete(r.items, key)
	return nil
}

var _ ports.PizzaRepository = (*PizzaRepository)(nil)
