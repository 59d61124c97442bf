package memory_test

import (
	"testing"
	"time"

	"pizzashop/internal/adapters/out/memory"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/model/pizza"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPizza(t *testing.T, name string, price float64) *pizza.Pizza {
	t.Helper()
	p, err := pizza.NewPizza(
		kernel.NewID(),
		name,
		"test pizza",
		[]string{"tomato", "mozzarella"},
		[]string{"small", "medium"},
		price,
	)
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T, status order.Status, timestamp time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewID(),
		[]kernel.ID{kernel.NewID()},
		status,
		timestamp,
		order.Customer{Name: "Mario Rossi", Email: "mario@example.com", Phone: "+390612345678"},
		nil,
	)
	require.NoError(t, err)
	return o
}

func TestPizzaRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("empty catalog yields empty slice", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("add then get", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		p := newPizza(t, "Margherita", 9.99)

		require.NoError(t, repo.Add(ctx, p))

		got, err := repo.Get(ctx, p.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(p))
	})

	t.Run("get all sorted by name", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		require.NoError(t, repo.Add(ctx, newPizza(t, "Quattro Formaggi", 13.99)))
		require.NoError(t, repo.Add(ctx, newPizza(t, "Diavola", 11.99)))
		require.NoError(t, repo.Add(ctx, newPizza(t, "Margherita", 9.99)))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Diavola", all[0].Name())
		assert.Equal(t, "Margherita", all[1].Name())
		assert.Equal(t, "Quattro Formaggi", all[2].Name())
	})

	t.Run("get by name is case sensitive", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		p := newPizza(t, "Margherita", 9.99)
		require.NoError(t, repo.Add(ctx, p))

		got, err := repo.GetByName(ctx, "Margherita")
		require.NoError(t, err)
		assert.True(t, got.IsEqual(p))

		_, err = repo.GetByName(ctx, "margherita")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("update replaces stored pizza", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		p := newPizza(t, "Margherita", 9.99)
		require.NoError(t, repo.Add(ctx, p))

		replacement, err := pizza.NewPizza(
			p.ID(), "Margherita", "updated", p.Toppings(), p.SizeOptions(), 10.99,
		)
		require.NoError(t, err)
		require.NoError(t, repo.Update(ctx, replacement))

		got, err := repo.Get(ctx, p.ID())
		require.NoError(t, err)
		assert.InDelta(t, 10.99, got.Price(), 0.001)
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		id := kernel.NewID()

		_, err := repo.Get(ctx, id)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		require.ErrorIs(t, repo.Update(ctx, newPizza(t, "Ghost", 9.99)), errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.Delete(ctx, id), errs.ErrObjectNotFound)
	})

	t.Run("delete removes pizza", func(t *testing.T) {
		repo := memory.NewPizzaRepository()
		p := newPizza(t, "Margherita", 9.99)
		require.NoError(t, repo.Add(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID()))

		_, err := repo.Get(ctx, p.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("add then get", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		o := newOrder(t, order.Pending, base)

		require.NoError(t, repo.Add(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("get all sorted by timestamp", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		second := newOrder(t, order.Pending, base.Add(time.Hour))
		first := newOrder(t, order.Pending, base)
		require.NoError(t, repo.Add(ctx, second))
		require.NoError(t, repo.Add(ctx, first))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, all[0].IsEqual(first))
		assert.True(t, all[1].IsEqual(second))
	})

	t.Run("filter by status", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		pending := newOrder(t, order.Pending, base)
		ready := newOrder(t, order.Ready, base.Add(time.Minute))
		require.NoError(t, repo.Add(ctx, pending))
		require.NoError(t, repo.Add(ctx, ready))

		got, err := repo.GetAllByStatus(ctx, "ready")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].IsEqual(ready))
	})

	t.Run("unmatched status yields empty slice", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, order.Pending, base)))

		got, err := repo.GetAllByStatus(ctx, "no-such-status")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("update replaces stored order", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		o := newOrder(t, order.Pending, base)
		require.NoError(t, repo.Add(ctx, o))

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, repo.Update(ctx, o))

		got, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, got.Status())
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		id := kernel.NewID()

		_, err := repo.Get(ctx, id)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.Delete(ctx, id), errs.ErrObjectNotFound)
	})
}

func TestConfigRepository(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewConfigRepository()

	value, err := repo.GetFlag(ctx, "isInitialized")
	require.NoError(t, err)
	assert.False(t, value)

	require.NoError(t, repo.SetFlag(ctx, "isInitialized", true))

	value, err = repo.GetFlag(ctx, "isInitialized")
	require.NoError(t, err)
	assert.True(t, value)
}
