package cart

import (
	"testing"

	"shopuniverse/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headphones() product.Product {
	return product.Seed()[0]
}

func watch() product.Product {
	return product.Seed()[1]
}

func TestAdd(t *testing.T) {
	t.Run("Merge", func(t *testing.T) {
		items := Add(nil, headphones(), 1)
		items = Add(items, headphones(), 2)

		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("AppendsInOrder", func(t *testing.T) {
		items := Add(nil, headphones(), 1)
		items = Add(items, watch(), 1)

		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].Product.ID)
		assert.Equal(t, "2", items[1].Product.ID)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		before := Add(nil, headphones(), 1)
		_ = Add(before, headphones(), 5)
		assert.Equal(t, 1, before[0].Quantity)
	})

	// No stock check: the cart may hold more units than StockCount.
	t.Run("ExceedsStock", func(t *testing.T) {
		p := headphones()
		items := Add(nil, p, p.StockCount+10)
		assert.Equal(t, p.StockCount+10, items[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	items := Add(Add(nil, headphones(), 1), watch(), 2)

	t.Run("Present", func(t *testing.T) {
		out := Remove(items, "1")
		require.Len(t, out, 1)
		assert.Equal(t, "2", out[0].Product.ID)
		assert.Len(t, items, 2)
	})

	t.Run("AbsentIsNoop", func(t *testing.T) {
		assert.Equal(t, items, Remove(items, "404"))
	})
}

func TestUpdateQuantity(t *testing.T) {
	items := Add(nil, headphones(), 1)

	t.Run("Replaces", func(t *testing.T) {
		out := UpdateQuantity(Add(items, headphones(), 1), "1", 5)
		require.Len(t, out, 1)
		assert.Equal(t, 5, out[0].Quantity)
	})

	t.Run("ZeroRemoves", func(t *testing.T) {
		assert.Equal(t, Remove(items, "1"), UpdateQuantity(items, "1", 0))
		assert.Empty(t, UpdateQuantity(items, "1", -3))
	})

	t.Run("AbsentIsNoop", func(t *testing.T) {
		assert.Equal(t, items, UpdateQuantity(items, "404", 7))
	})
}

func TestFindAndCount(t *testing.T) {
	items := Add(Add(nil, headphones(), 2), watch(), 3)

	it, ok := Find(items, "2")
	assert.True(t, ok)
	assert.Equal(t, 3, it.Quantity)

	_, ok = Find(items, "404")
	assert.False(t, ok)

	assert.Equal(t, 5, Count(items))
	assert.Equal(t, 0, Count(nil))
}

func TestClone(t *testing.T) {
	assert.NotNil(t, Clone(nil))
	assert.Empty(t, Clone(nil))

	items := Add(nil, headphones(), 1)
	cp := Clone(items)
	cp[0].Product.Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", items[0].Product.Tags[0])
}

func TestCartItem_LineTotal(t *testing.T) {
	it := CartItem{Product: watch(), Quantity: 2}
	assert.InDelta(t, 499.98, it.LineTotal(), 1e-9)
}
