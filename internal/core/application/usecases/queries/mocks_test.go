package queries_test

import (
	"context"
	"time"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/mock"
)

type MockPizzaRepository struct{ mock.Mock }

func (m *MockPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pizza.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pizza.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) GetByName(ctx context.Context, name string) (*pizza.Pizza, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pizza.Pizza), args.Error(1)
}

func (m *MockPizzaRepository) Add(ctx context.Context, aggregate *pizza.Pizza) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPizzaRepository) Update(ctx context.Context, aggregate *pizza.Pizza) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPizzaRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mustNewPizza(name string) *pizza.Pizza {
	p, err := pizza.NewPizza(
		kernel.NewID(),
		name,
		"classic",
		[]string{"tomato", "mozzarella"},
		[]string{"small", "medium", "large"},
		12.99,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func mustNewOrder(status order.Status) *order.Order {
	customer := order.Customer{
		Name:  "Mario Rossi",
		Email: "mario@example.com",
		Phone: "+390612345678",
	}
	o, err := order.NewOrder(
		kernel.NewID(),
		[]kernel.ID{kernel.NewID()},
		status,
		time.Now().UTC(),
		customer,
		nil,
	)
	if err != nil {
		panic(err)
	}
	return o
}
