package http

import (
	"time"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pizza"
)

// Response is the uniform envelope every endpoint returns.
// Status is "success" or "error"; Data is null on failures.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func successResponse(data any, message string) Response {
	return Response{Status: "success", Message: message, Data: data}
}

func errorResponse(message string) Response {
	return Response{Status: "error", Message: message, Data: nil}
}

// PizzaRequest is the request body for creating and replacing pizzas.
type PizzaRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Toppings    []string `json:"toppings" validate:"required,min=1,dive,max=50"`
	SizeOptions []string `json:"sizeOptions" validate:"required,min=1,dive,oneof=small medium large"`
	Price       float64  `json:"price" validate:"required,gte=0.01"`
}

// OrderRequest is the request body for creating orders. Timestamp is accepted
// for compatibility but always discarded; the server stamps creation time.
type OrderRequest struct {
	Pizzas               []string          `json:"pizzas" validate:"required,min=1"`
	Status               string            `json:"status"`
	Timestamp            *time.Time        `json:"timestamp"`
	CustomerName         string            `json:"customerName" validate:"omitempty,max=100"`
	CustomerEmail        string            `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone        string            `json:"customerPhone"`
	AdditionalAttributes map[string]string `json:"additionalAttributes"`
}

// StatusUpdateRequest is the optional request body for the status-update
// endpoint; the status may instead arrive as a query parameter.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// PizzaResponse is the wire representation of a catalog entry.
type PizzaResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Toppings    []string `json:"toppings"`
	SizeOptions []string `json:"sizeOptions"`
	Price       float64  `json:"price"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID                   string            `json:"id"`
	Pizzas               []string          `json:"pizzas"`
	Status               string            `json:"status"`
	Timestamp            time.Time         `json:"timestamp"`
	CustomerName         string            `json:"customerName,omitempty"`
	CustomerEmail        string            `json:"customerEmail,omitempty"`
	CustomerPhone        string            `json:"customerPhone,omitempty"`
	AdditionalAttributes map[string]string `json:"additionalAttributes,omitempty"`
}

// EndpointGroup describes one resource family in the root endpoint listing.
type EndpointGroup struct {
	Category           string   `json:"category"`
	BaseEndpoint       string   `json:"baseEndpoint"`
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// EndpointsResponse is the payload of GET /.
type EndpointsResponse struct {
	BaseURL string        `json:"baseUrl"`
	Pizzas  EndpointGroup `json:"pizzas"`
	Orders  EndpointGroup `json:"orders"`
}

func pizzaToResponse(aggregate *pizza.Pizza) PizzaResponse {
	return PizzaResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Toppings:    aggregate.Toppings(),
		SizeOptions: aggregate.SizeOptions(),
		Price:       aggregate.Price(),
	}
}

func pizzasToResponse(aggregates []*pizza.Pizza) []PizzaResponse {
	result := make([]PizzaResponse, len(aggregates))
	for i, aggregate := range aggregates {
		result[i] = pizzaToResponse(aggregate)
	}
	return result
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	pizzaIDs := make([]string, len(aggregate.PizzaIDs()))
	for i, id := range aggregate.PizzaIDs() {
		pizzaIDs[i] = id.String()
	}

	customer := aggregate.Customer()
	return OrderResponse{
		ID:                   aggregate.ID().String(),
		Pizzas:               pizzaIDs,
		Status:               aggregate.Status().String(),
		Timestamp:            aggregate.Timestamp(),
		CustomerName:         customer.Name,
		CustomerEmail:        customer.Email,
		CustomerPhone:        customer.Phone,
		AdditionalAttributes: aggregate.AdditionalAttributes(),
	}
}

func ordersToResponse(aggregates []*order.Order) []OrderResponse {
	result := make([]OrderResponse, len(aggregates))
	for i, aggregate := range aggregates {
		result[i] = orderToResponse(aggregate)
	}
	return result
}
