package commands_test

import (
	"errors"
	"testing"
	"time"

	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pizzaA := mustNewPizza("Margherita")
	pizzaB := mustNewPizza("Diavola")

	cmd, err := commands.NewCreateOrderCommand(
		[]string{pizzaA.ID().String(), pizzaB.ID().String()},
		"",
		order.Customer{Name: "Ada"},
		nil,
	)
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	pizzaRepo.On("Get", ctx, pizzaA.ID()).Return(pizzaA, nil).Once()
	pizzaRepo.On("Get", ctx, pizzaB.ID()).Return(pizzaB, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	before := time.Now().UTC()
	h := commands.NewCreateOrderCommandHandler(orderRepo, pizzaRepo)
	created, err := h.Handle(ctx, cmd)
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Len(t, created.PizzaIDs(), 2)
	assert.False(t, created.Timestamp().Before(before))
	assert.False(t, created.Timestamp().After(after))
	pizzaRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MissingPizza(t *testing.T) {
	ctx := t.Context()
	pizzaA := mustNewPizza("Margherita")
	missingID := kernel.NewID()

	cmd, err := commands.NewCreateOrderCommand(
		[]string{pizzaA.ID().String(), missingID.String()},
		"",
		order.Customer{},
		nil,
	)
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	pizzaRepo.On("Get", ctx, pizzaA.ID()).Return(pizzaA, nil).Once()
	pizzaRepo.On("Get", ctx, missingID).
		Return(nil, errs.NewObjectNotFoundError("pizza", missingID.String())).Once()

	orderRepo := new(MockOrderRepository)

	h := commands.NewCreateOrderCommandHandler(orderRepo, pizzaRepo)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), missingID.String())
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	pizzaRepo := new(MockPizzaRepository)
	orderRepo := new(MockOrderRepository)

	h := commands.NewCreateOrderCommandHandler(orderRepo, pizzaRepo)
	_, err := h.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	pizzaRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ExplicitStatusIsKept(t *testing.T) {
	ctx := t.Context()
	pizzaA := mustNewPizza("Margherita")

	cmd, err := commands.NewCreateOrderCommand(
		[]string{pizzaA.ID().String()},
		"ready",
		order.Customer{},
		nil,
	)
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	pizzaRepo.On("Get", ctx, pizzaA.ID()).Return(pizzaA, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(orderRepo, pizzaRepo)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Ready, created.Status())
}

func TestCreateOrderCommandHandler_Handle_AddFailure(t *testing.T) {
	ctx := t.Context()
	pizzaA := mustNewPizza("Margherita")

	cmd, err := commands.NewCreateOrderCommand(
		[]string{pizzaA.ID().String()}, "", order.Customer{}, nil,
	)
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	pizzaRepo.On("Get", ctx, pizzaA.ID()).Return(pizzaA, nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errors.New("write failed")).Once()

	h := commands.NewCreateOrderCommandHandler(orderRepo, pizzaRepo)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	orderRepo.AssertExpectations(t)
}
