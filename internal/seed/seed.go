// Package seed loads sample catalog and order data into an empty store at
// startup. Seeding runs at most once: a configuration flag records completion
// so restarts do not duplicate the data.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/core/ports"
)

// initializedFlag is the config document guarding against repeated seeding.
const initializedFlag = "isInitialized"

//go:embed data/pizzas.json data/orders.json
var dataFS embed.FS

type pizzaSeed struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Toppings    []string `json:"toppings"`
	SizeOptions []string `json:"sizeOptions"`
	Price       float64  `json:"price"`
}

type orderSeed struct {
	Status               string            `json:"status"`
	CustomerName         string            `json:"customerName"`
	CustomerEmail        string            `json:"customerEmail"`
	CustomerPhone        string            `json:"customerPhone"`
	AdditionalAttributes map[string]string `json:"additionalAttributes"`
}

// Seeder populates the pizza and order repositories with sample data.
type Seeder struct {
	pizzaRepo  ports.PizzaRepository
	orderRepo  ports.OrderRepository
	configRepo ports.ConfigRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewSeeder creates a Seeder over the given repositories.
func NewSeeder(
	pizzaRepo ports.PizzaRepository,
	orderRepo ports.OrderRepository,
	configRepo ports.ConfigRepository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		pizzaRepo:  pizzaRepo,
		orderRepo:  orderRepo,
		configRepo: configRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Run seeds the store unless a previous run already completed. Each seeded
// order references pizzas created in the same run so the catalog stays
// referentially consistent.
func (s *Seeder) Run(ctx context.Context) error {
	initialized, err := s.configRepo.GetFlag(ctx, initializedFlag)
	if err != nil {
		return fmt.Errorf("read %s flag: %w", initializedFlag, err)
	}
	if initialized {
		s.logger.Info("store already seeded, skipping")
		return nil
	}

	pizzas, err := s.seedPizzas(ctx)
	if err != nil {
		return err
	}

	if err := s.seedOrders(ctx, pizzas); err != nil {
		return err
	}

	if err := s.configRepo.SetFlag(ctx, initializedFlag, true); err != nil {
		return fmt.Errorf("set %s flag: %w", initializedFlag, err)
	}

	s.logger.Info("store seeded", slog.Int("pizzas", len(pizzas)))
	return nil
}

func (s *Seeder) seedPizzas(ctx context.Context) ([]*pizza.Pizza, error) {
	raw, err := dataFS.ReadFile("data/pizzas.json")
	if err != nil {
		return nil, fmt.Errorf("read pizza seed data: %w", err)
	}

	var seeds []pizzaSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parse pizza seed data: %w", err)
	}

	pizzas := make([]*pizza.Pizza, 0, len(seeds))
	for _, seed := range seeds {
		aggregate, err := pizza.NewPizza(
			kernel.NewID(),
			seed.Name,
			seed.Description,
			seed.Toppings,
			seed.SizeOptions,
			seed.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("build seed pizza %q: %w", seed.Name, err)
		}

		if err := s.pizzaRepo.Add(ctx, aggregate); err != nil {
			return nil, fmt.Errorf("store seed pizza %q: %w", seed.Name, err)
		}
		pizzas = append(pizzas, aggregate)
	}

	return pizzas, nil
}

func (s *Seeder) seedOrders(ctx context.Context, pizzas []*pizza.Pizza) error {
	raw, err := dataFS.ReadFile("data/orders.json")
	if err != nil {
		return fmt.Errorf("read order seed data: %w", err)
	}

	var seeds []orderSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("parse order seed data: %w", err)
	}

	for i, seed := range seeds {
		status, err := order.ParseStatusOrDefault(seed.Status)
		if err != nil {
			return fmt.Errorf("build seed order %d: %w", i, err)
		}

		aggregate, err := order.NewOrder(
			kernel.NewID(),
			seedOrderPizzaIDs(i, pizzas),
			status,
			s.now().UTC(),
			order.Customer{
				Name:  seed.CustomerName,
				Email: seed.CustomerEmail,
				Phone: seed.CustomerPhone,
			},
			seed.AdditionalAttributes,
		)
		if err != nil {
			return fmt.Errorf("build seed order %d: %w", i, err)
		}

		if err := s.orderRepo.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("store seed order %d: %w", i, err)
		}
	}

	return nil
}

// seedOrderPizzaIDs spreads the seeded pizzas across the sample orders so
// every order references at least one existing catalog entry.
func seedOrderPizzaIDs(index int, pizzas []*pizza.Pizza) []kernel.ID {
	pick := func(indices ...int) []kernel.ID {
		ids := make([]kernel.ID, 0, len(indices))
		for _, i := range indices {
			ids = append(ids, pizzas[i%len(pizzas)].ID())
		}
		return ids
	}

	switch index {
	case 0:
		return pick(0)
	case 1:
		return pick(1, 2)
	case 2:
		return pick(2)
	default:
		return pick(0, 1)
	}
}
