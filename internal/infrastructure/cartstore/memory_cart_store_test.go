package cartstore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shop"
)

func sampleCart(t *testing.T) shop.Cart {
	t.Helper()
	product, err := catalog.NewProduct("Moringa Powder", decimal.NewFromInt(399))
	require.NoError(t, err)
	return shop.NewCart().Add(*product)
}

func TestMemoryCartStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session yields empty cart", func(t *testing.T) {
		store := NewMemoryCartStore(0)
		cart, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("put get delete", func(t *testing.T) {
		store := NewMemoryCartStore(0)
		require.NoError(t, store.Put(ctx, "sess", sampleCart(t)))

		cart, err := store.Get(ctx, "sess")
		require.NoError(t, err)
		assert.Equal(t, 1, cart.ItemCount())

		require.NoError(t, store.Delete(ctx, "sess"))
		cart, err = store.Get(ctx, "sess")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("expired cart is dropped", func(t *testing.T) {
		store := NewMemoryCartStore(time.Hour)
		require.NoError(t, store.Put(ctx, "sess", sampleCart(t)))

		store.nowFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }

		cart, err := store.Get(ctx, "sess")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		store := NewMemoryCartStore(0)
		require.NoError(t, store.Put(ctx, "a", sampleCart(t)))

		cart, err := store.Get(ctx, "b")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})
}
