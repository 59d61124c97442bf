package order_test

import (
	"strings"
	"testing"
	"time"

	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderArgs() (kernel.ID, []kernel.ID, order.Status, time.Time, order.Customer, map[string]string) {
	return kernel.NewID(),
		[]kernel.ID{kernel.NewID(), kernel.NewID()},
		order.Pending,
		time.Now(),
		order.Customer{Name: "Ada", Email: "ada@example.com", Phone: "+12025550123"},
		map[string]string{"note": "extra napkins"}
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		id, pizzaIDs, status, ts, customer, attrs := validOrderArgs()

		o, err := order.NewOrder(id, pizzaIDs, status, ts, customer, attrs)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Len(t, o.PizzaIDs(), 2)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, ts, o.Timestamp())
		assert.Equal(t, customer, o.Customer())
		assert.Equal(t, attrs, o.AdditionalAttributes())
	})

	t.Run("customer details are optional", func(t *testing.T) {
		id, pizzaIDs, status, ts, _, _ := validOrderArgs()

		o, err := order.NewOrder(id, pizzaIDs, status, ts, order.Customer{}, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Customer{}, o.Customer())
		assert.Nil(t, o.AdditionalAttributes())
	})

	t.Run("no pizzas is rejected", func(t *testing.T) {
		id, _, status, ts, customer, attrs := validOrderArgs()

		_, err := order.NewOrder(id, nil, status, ts, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty pizza list is rejected", func(t *testing.T) {
		id, _, status, ts, customer, attrs := validOrderArgs()

		_, err := order.NewOrder(id, []kernel.ID{}, status, ts, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid pizza id is rejected", func(t *testing.T) {
		id, _, status, ts, customer, attrs := validOrderArgs()

		_, err := order.NewOrder(id, []kernel.ID{{}}, status, ts, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		id, pizzaIDs, _, ts, customer, attrs := validOrderArgs()

		_, err := order.NewOrder(id, pizzaIDs, order.Unknown, ts, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero timestamp is rejected", func(t *testing.T) {
		id, pizzaIDs, status, _, customer, attrs := validOrderArgs()

		_, err := order.NewOrder(id, pizzaIDs, status, time.Time{}, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("customer name too long", func(t *testing.T) {
		id, pizzaIDs, status, ts, _, attrs := validOrderArgs()
		customer := order.Customer{Name: strings.Repeat("a", order.MaxCustomerNameLength+1)}

		_, err := order.NewOrder(id, pizzaIDs, status, ts, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("malformed email", func(t *testing.T) {
		id, pizzaIDs, status, ts, _, attrs := validOrderArgs()
		customer := order.Customer{Email: "not-an-email"}

		_, err := order.NewOrder(id, pizzaIDs, status, ts, customer, attrs)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("malformed phone", func(t *testing.T) {
		id, pizzaIDs, status, ts, _, attrs := validOrderArgs()

		for _, phone := range []string{"12345", "++12025550123", "1202555012345678", "phone"} {
			customer := order.Customer{Phone: phone}
			_, err := order.NewOrder(id, pizzaIDs, status, ts, customer, attrs)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, phone)
		}
	})

	t.Run("phone without plus is accepted", func(t *testing.T) {
		id, pizzaIDs, status, ts, _, attrs := validOrderArgs()
		customer := order.Customer{Phone: "1202555012345"}

		_, err := order.NewOrder(id, pizzaIDs, status, ts, customer, attrs)

		require.NoError(t, err)
	})
}

func TestOrderChangeStatus(t *testing.T) {
	t.Run("follows the transition chain", func(t *testing.T) {
		id, pizzaIDs, _, ts, customer, attrs := validOrderArgs()
		o, err := order.NewOrder(id, pizzaIDs, order.Pending, ts, customer, attrs)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.ChangeStatus(order.Ready))
		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects skipping a step and leaves status unchanged", func(t *testing.T) {
		id, pizzaIDs, _, ts, customer, attrs := validOrderArgs()
		o, err := order.NewOrder(id, pizzaIDs, order.Pending, ts, customer, attrs)
		require.NoError(t, err)

		require.ErrorIs(t, o.ChangeStatus(order.Delivered), errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects transitions out of a terminal status", func(t *testing.T) {
		id, pizzaIDs, _, ts, customer, attrs := validOrderArgs()
		o, err := order.NewOrder(id, pizzaIDs, order.Cancelled, ts, customer, attrs)
		require.NoError(t, err)

		require.ErrorIs(t, o.ChangeStatus(order.Pending), errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	id, pizzaIDs, status, ts, customer, attrs := validOrderArgs()
	original, err := order.NewOrder(id, pizzaIDs, status, ts, customer, attrs)
	require.NoError(t, err)

	restored, err := order.RestoreOrder(
		original.ID(),
		original.PizzaIDs(),
		original.Status(),
		original.Timestamp(),
		original.Customer(),
		original.AdditionalAttributes(),
	)

	require.NoError(t, err)
	assert.True(t, original.IsEqual(restored))
	assert.Equal(t, original.Status(), restored.Status())
}

func TestOrderValidate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}
