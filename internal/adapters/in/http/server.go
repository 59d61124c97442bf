// Package http exposes the application's use cases over a REST surface.
// All endpoints render the uniform response envelope; errors are classified
// at this boundary and internal failure details never reach the caller.
package http

import (
	"log/slog"
	"net/http"

	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/application/usecases/queries"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPizzaHandler       commands.CreatePizzaCommandHandler
	updatePizzaHandler       commands.UpdatePizzaCommandHandler
	deletePizzaHandler       commands.DeletePizzaCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getAllPizzasHandler      queries.GetAllPizzasQueryHandler
	getPizzaByIDHandler      queries.GetPizzaByIDQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createPizzaHandler commands.CreatePizzaCommandHandler,
	updatePizzaHandler commands.UpdatePizzaCommandHandler,
	deletePizzaHandler commands.DeletePizzaCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getAllPizzasHandler queries.GetAllPizzasQueryHandler,
	getPizzaByIDHandler queries.GetPizzaByIDQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createPizzaHandler:       createPizzaHandler,
		updatePizzaHandler:       updatePizzaHandler,
		deletePizzaHandler:       deletePizzaHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getAllPizzasHandler:      getAllPizzasHandler,
		getPizzaByIDHandler:      getPizzaByIDHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
	}
}

// NewEcho builds an echo instance with request logging, panic recovery, the
// request validator, the envelope error handler and all routes registered.
func NewEcho(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler()
	server.RegisterRoutes(e)
	return e
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.GetEndpoints)
	e.GET("/health", s.GetHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/pizzas", s.GetAllPizzas)
	e.GET("/pizzas/:id", s.GetPizzaByID)
	e.POST("/pizzas", s.CreatePizza)
	e.PUT("/pizzas/:id", s.UpdatePizza)
	e.DELETE("/pizzas/:id", s.DeletePizza)

	e.GET("/orders", s.GetAllOrders)
	e.GET("/orders/status/:status", s.GetOrdersByStatus)
	e.GET("/orders/:id", s.GetOrderByID)
	e.POST("/orders", s.CreateOrder)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.DELETE("/orders/:id", s.CancelOrder)
}

// GetEndpoints godoc
//
// @Summary List the available API endpoints
// @Tags root
// @Produce json
// @Success 200 {object} Response{data=EndpointsResponse}
// @Router / [get]
func (s *Server) GetEndpoints(c echo.Context) error {
	response := EndpointsResponse{
		BaseURL: "/",
		Pizzas: EndpointGroup{
			Category:     "Pizzas Management",
			BaseEndpoint: "/pizzas",
			AvailableEndpoints: []string{
				"GET /pizzas - Get all pizzas",
				"GET /pizzas/{id} - Get pizza by ID",
				"POST /pizzas - Create new pizza",
				"PUT /pizzas/{id} - Update pizza",
				"DELETE /pizzas/{id} - Delete pizza",
			},
		},
		Orders: EndpointGroup{
			Category:     "Orders Management",
			BaseEndpoint: "/orders",
			AvailableEndpoints: []string{
				"GET /orders - Get all orders",
				"GET /orders/status/{status} - Get orders by status",
				"GET /orders/{id} - Get order by ID",
				"POST /orders - Create new order",
				"PUT /orders/{id}/status - Update order status",
				"DELETE /orders/{id} - Cancel order",
			},
		},
	}

	return c.JSON(http.StatusOK, successResponse(response, "Request processed successfully"))
}

// GetHealth godoc
//
// @Summary Check the health of the service
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (s *Server) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, successResponse(nil, "ok"))
}

// GetAllPizzas godoc
//
// @Summary Get all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {object} Response{data=[]PizzaResponse}
// @Failure 500 {object} Response
// @Router /pizzas [get]
func (s *Server) GetAllPizzas(c echo.Context) error {
	pizzas, err := s.getAllPizzasHandler.Handle(c.Request().Context(), queries.NewGetAllPizzasQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(pizzasToResponse(pizzas), "pizzas retrieved"))
}

// GetPizzaByID godoc
//
// @Summary Get a pizza by ID
// @Tags pizzas
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} Response{data=PizzaResponse}
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /pizzas/{id} [get]
func (s *Server) GetPizzaByID(c echo.Context) error {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetPizzaByIDQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	aggregate, err := s.getPizzaByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(pizzaToResponse(aggregate), "pizza retrieved"))
}

// CreatePizza godoc
//
// @Summary Create a new pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body PizzaRequest true "New pizza"
// @Success 201 {object} Response{data=PizzaResponse}
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /pizzas [post]
func (s *Server) CreatePizza(c echo.Context) error {
	req, err := bindPizzaRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	cmd, err := commands.NewCreatePizzaCommand(
		req.Name, req.Description, req.Toppings, req.SizeOptions, req.Price,
	)
	if err != nil {
		return respondError(c, err)
	}

	aggregate, err := s.createPizzaHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, successResponse(pizzaToResponse(aggregate), "pizza created"))
}

// UpdatePizza godoc
//
// @Summary Replace an existing pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Param pizza body PizzaRequest true "Updated pizza"
// @Success 200 {object} Response{data=PizzaResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /pizzas/{id} [put]
func (s *Server) UpdatePizza(c echo.Context) error {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	req, err := bindPizzaRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	cmd, err := commands.NewUpdatePizzaCommand(
		id, req.Name, req.Description, req.Toppings, req.SizeOptions, req.Price,
	)
	if err != nil {
		return respondError(c, err)
	}

	aggregate, err := s.updatePizzaHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(pizzaToResponse(aggregate), "pizza updated"))
}

// DeletePizza godoc
//
// @Summary Delete a pizza
// @Tags pizzas
// @Param id path string true "Pizza ID"
// @Success 204
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /pizzas/{id} [delete]
func (s *Server) DeletePizza(c echo.Context) error {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewDeletePizzaCommand(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.deletePizzaHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllOrders godoc
//
// @Summary Get all orders
// @Tags orders
// @Produce json
// @Success 200 {object} Response{data=[]OrderResponse}
// @Failure 500 {object} Response
// @Router /orders [get]
func (s *Server) GetAllOrders(c echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(ordersToResponse(orders), "orders retrieved"))
}

// GetOrdersByStatus godoc
//
// @Summary Get orders by status
// @Tags orders
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {object} Response{data=[]OrderResponse}
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /orders/status/{status} [get]
func (s *Server) GetOrdersByStatus(c echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(c.Param("status"))
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(ordersToResponse(orders), "orders retrieved"))
}

// GetOrderByID godoc
//
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Response{data=OrderResponse}
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{id} [get]
func (s *Server) GetOrderByID(c echo.Context) error {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	aggregate, err := s.getOrderByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(orderToResponse(aggregate), "order retrieved"))
}

// CreateOrder godoc
//
// @Summary Create a new order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body OrderRequest true "New order"
// @Success 201 {object} Response{data=OrderResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	if c.Request().ContentLength == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse(errBodyRequired.Error()))
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(errInvalidBody.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.Pizzas,
		req.Status,
		orderCustomerFromRequest(req),
		req.AdditionalAttributes,
	)
	if err != nil {
		return respondError(c, err)
	}

	aggregate, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, successResponse(orderToResponse(aggregate), "order created"))
}

// UpdateOrderStatus godoc
//
// @Summary Update the status of an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status query string false "New status"
// @Param body body StatusUpdateRequest false "New status"
// @Success 200 {object} Response{data=OrderResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{id}/status [put]
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	status := c.QueryParam("status")
	if c.Request().ContentLength > 0 {
		var req StatusUpdateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(errInvalidBody.Error()))
		}
		if req.Status != "" {
			status = req.Status
		}
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return respondError(c, err)
	}

	aggregate, err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(orderToResponse(aggregate), "order status updated"))
}

// CancelOrder godoc
//
// @Summary Cancel an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{id} [delete]
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse(nil, "order cancelled"))
}

// bindPizzaRequest decodes and validates a pizza request body, distinguishing
// an absent body from a present but invalid one.
func bindPizzaRequest(c echo.Context) (PizzaRequest, error) {
	var req PizzaRequest
	if c.Request().ContentLength == 0 {
		return req, errBodyRequired
	}
	if err := c.Bind(&req); err != nil {
		return req, errInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func orderCustomerFromRequest(req OrderRequest) order.Customer {
	return order.Customer{
		Name:  req.CustomerName,
		Email: req.CustomerEmail,
		Phone: req.CustomerPhone,
	}
}
