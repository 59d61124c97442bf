package kernel_test

import (
	"testing"

	"pizzashop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("mints unique valid ids", func(t *testing.T) {
		first := kernel.NewID()
		second := kernel.NewID()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
		assert.NotEmpty(t, first.String())
	})
}

func TestIDFromString(t *testing.T) {
	t.Run("accepts opaque non-empty identifiers", func(t *testing.T) {
		id, err := kernel.IDFromString("665f1c2e9b3a4d0012a4e001")

		require.NoError(t, err)
		assert.Equal(t, "665f1c2e9b3a4d0012a4e001", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := kernel.IDFromString("")
		require.Error(t, err)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		original := kernel.NewID()
		restored, err := kernel.IDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})
}

func TestIDValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.ID
		require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
	})
}

func TestConstructorGuard(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var g kernel.ConstructorGuard
		require.Error(t, g.Validate(nil))
		require.ErrorIs(t, g.Validate(nil), kernel.ErrDefaultConstructorGuard)
	})

	t.Run("constructed guard passes", func(t *testing.T) {
		g := kernel.NewConstructorGuard()
		require.NoError(t, g.Validate(nil))
	})

	t.Run("custom error is returned for zero value", func(t *testing.T) {
		var g kernel.ConstructorGuard
		custom := assert.AnError
		require.ErrorIs(t, g.Validate(custom), custom)
	})
}
