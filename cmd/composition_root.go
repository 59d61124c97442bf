package cmd

import (
	"log/slog"

	httpin "pizzashop/internal/adapters/in/http"
	"pizzashop/internal/adapters/out/memory"
	"pizzashop/internal/adapters/out/mongo/configrepo"
	"pizzashop/internal/adapters/out/mongo/orderrepo"
	"pizzashop/internal/adapters/out/mongo/pizzarepo"
	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/application/usecases/queries"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/seed"

	"go.mongodb.org/mongo-driver/mongo"
)

// CompositionRoot wires repositories and use case handlers once at process
// start. Repositories are selected by the configured store driver; everything
// downstream depends only on the ports.
type CompositionRoot struct {
	pizzaRepo  ports.PizzaRepository
	orderRepo  ports.OrderRepository
	configRepo ports.ConfigRepository
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
// The mongo database is required only for the mongo store driver.
func NewCompositionRoot(config Config, db *mongo.Database, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{logger: logger}

	if config.StoreDriver == StoreDriverMemory {
		root.pizzaRepo = memory.NewPizzaRepository()
		root.orderRepo = memory.NewOrderRepository()
		root.configRepo = memory.NewConfigRepository()
		return root
	}

	root.pizzaRepo = pizzarepo.NewMongoPizzaRepository(db)
	root.orderRepo = orderrepo.NewMongoOrderRepository(db)
	root.configRepo = configrepo.NewMongoConfigRepository(db)
	return root
}

func (c *CompositionRoot) CreateCreatePizzaCommandHandler() commands.CreatePizzaCommandHandler {
	return commands.NewCreatePizzaCommandHandler(c.pizzaRepo)
}

func (c *CompositionRoot) CreateUpdatePizzaCommandHandler() commands.UpdatePizzaCommandHandler {
	return commands.NewUpdatePizzaCommandHandler(c.pizzaRepo)
}

func (c *CompositionRoot) CreateDeletePizzaCommandHandler() commands.DeletePizzaCommandHandler {
	return commands.NewDeletePizzaCommandHandler(c.pizzaRepo)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo, c.pizzaRepo)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetAllPizzasQueryHandler() queries.GetAllPizzasQueryHandler {
	return queries.NewGetAllPizzasQueryHandler(c.pizzaRepo)
}

func (c *CompositionRoot) CreateGetPizzaByIDQueryHandler() queries.GetPizzaByIDQueryHandler {
	return queries.NewGetPizzaByIDQueryHandler(c.pizzaRepo)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.orderRepo)
}

// CreateSeeder builds the startup seeder over the configured repositories.
func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(c.pizzaRepo, c.orderRepo, c.configRepo, c.logger)
}

// CreateHTTPServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreatePizzaCommandHandler(),
		c.CreateUpdatePizzaCommandHandler(),
		c.CreateDeletePizzaCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetAllPizzasQueryHandler(),
		c.CreateGetPizzaByIDQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
	)
}
