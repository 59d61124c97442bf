package memory

import (
	"context"
	"sort"
	"sync"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/pkg/errs"
)

// OrderRepository is an in-memory OrderRepository implementation.
type OrderRepository struct {
	mu    sync.RWMutex
	items map[string]*order.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		items: make(map[string]*order.Order),
	}
}

// GetAll returns every order sorted by timestamp, oldest first.
func (r *OrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*order.Order, 0, len(r.items))
	for _, o := range r.items {
		result = append(result, o)
	}
	sortByTimestamp(result)

	return result, nil
}

// GetAllByStatus returns the orders whose status matches the given wire
// representation. Unmatched statuses yield an empty slice.
func (r *OrderRepository) GetAllByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*order.Order, 0)
	for _, o := range r.items {
		if o.Status().String() == status {
			result = append(result, o)
		}
	}
	sortByTimestamp(result)

	return result, nil
}

// Get returns the order stored under id.
func (r *OrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// Add stores a new order under its identifier.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[aggregate.ID().String()] = aggregate
	return nil
}

// Update replaces the stored order wholesale.
func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, ok := r.items[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}
	r.items[key] = aggregate
	return nil
}

// Delete removes the order stored under id.
func (r *OrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.items[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}
	delete(r.items, key)
	return nil
}

func sortByTimestamp(orders []*order.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].Timestamp().Equal(orders[j].Timestamp()) {
			return orders[i].Timestamp().Before(orders[j].Timestamp())
		}
		return orders[i].ID().String() < orders[j].ID().String()
	})
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
