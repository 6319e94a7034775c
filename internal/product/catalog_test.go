package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(Seed())
	require.NoError(t, err)
	return c
}

func ids(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSeed_Valid(t *testing.T) {
	for _, p := range Seed() {
		assert.NoError(t, p.Validate(), p.ID)
	}
	assert.Len(t, Seed(), 8)
}

func TestProduct_Validate(t *testing.T) {
	valid := Product{ID: "x", Price: 1, Images: []string{"a"}, Rating: 3, InStock: true, StockCount: 2}
	require.NoError(t, valid.Validate())

	t.Run("NonPositivePrice", func(t *testing.T) {
		p := valid
		p.Price = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})

	t.Run("NoImages", func(t *testing.T) {
		p := valid
		p.Images = nil
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		p := valid
		p.Rating = 5.1
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})

	t.Run("OutOfStockWithCount", func(t *testing.T) {
		p := valid
		p.InStock = false
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})
}

func TestProduct_Discount(t *testing.T) {
	c := newSeedCatalog(t)

	headphones, err := c.Get("1")
	require.NoError(t, err)
	assert.True(t, headphones.HasDiscount())
	assert.Equal(t, 25, headphones.DiscountPercent())

	watch, err := c.Get("2")
	require.NoError(t, err)
	assert.False(t, watch.HasDiscount())
	assert.Equal(t, 0, watch.DiscountPercent())
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	seed := Seed()
	seed = append(seed, seed[0])

	_, err := NewCatalog(seed)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestCatalog_Get(t *testing.T) {
	c := newSeedCatalog(t)

	t.Run("Found", func(t *testing.T) {
		p, err := c.Get("3")
		assert.NoError(t, err)
		assert.Equal(t, "Professional Camera", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := c.Get("999")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		p, err := c.Get("1")
		require.NoError(t, err)
		p.Images[0] = "mutated"
		*p.OriginalPrice = 1

		again, err := c.Get("1")
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again.Images[0])
		assert.Equal(t, 399.99, *again.OriginalPrice)
	})
}

func TestCatalog_Browse(t *testing.T) {
	c := newSeedCatalog(t)

	t.Run("Categories", func(t *testing.T) {
		assert.Equal(t, []string{
			"Electronics", "Wearables", "Photography", "Furniture",
			"Accessories", "Kitchen", "Audio", "Gaming",
		}, c.Categories())
	})

	t.Run("Featured", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(c.Featured(6)))
		assert.Len(t, c.Featured(100), 8)
		assert.Empty(t, c.Featured(0))
	})

	t.Run("Related", func(t *testing.T) {
		assert.Empty(t, c.Related("1", 4))
		assert.Nil(t, c.Related("missing", 4))
	})
}

func TestCatalog_Search(t *testing.T) {
	c := newSeedCatalog(t)

	t.Run("DefaultSortByName", func(t *testing.T) {
		res, err := c.Search(Query{})
		require.NoError(t, err)
		require.Len(t, res, 8)
		assert.Equal(t, "Bluetooth Speaker", res[0].Name)
		assert.Equal(t, "Wireless Charging Stand", res[7].Name)
	})

	t.Run("Category", func(t *testing.T) {
		res, err := c.Search(Query{Category: "Kitchen"})
		require.NoError(t, err)
		assert.Equal(t, []string{"6"}, ids(res))

		all, err := c.Search(Query{Category: "all"})
		require.NoError(t, err)
		assert.Len(t, all, 8)
	})

	t.Run("PriceRangeAndSort", func(t *testing.T) {
		lo, hi := 80.0, 300.0
		res, err := c.Search(Query{MinPrice: &lo, MaxPrice: &hi, Sort: SortPriceLow})
		require.NoError(t, err)
		assert.Equal(t, []string{"7", "8", "6", "2", "1"}, ids(res))

		res, err = c.Search(Query{MinPrice: &lo, MaxPrice: &hi, Sort: SortPriceHigh})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "6", "8", "7"}, ids(res))
	})

	t.Run("Rating", func(t *testing.T) {
		res, err := c.Search(Query{Sort: SortRating})
		require.NoError(t, err)
		assert.Equal(t, "3", res[0].ID)
		assert.Equal(t, "7", res[len(res)-1].ID)
	})

	t.Run("WhereExpression", func(t *testing.T) {
		res, err := c.Search(Query{Where: `"wireless" in tags && price < 100`})
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, ids(res))

		res, err = c.Search(Query{Where: `discount > 0`, Sort: SortPriceLow})
		require.NoError(t, err)
		assert.Equal(t, []string{"7", "1", "3"}, ids(res))
	})

	t.Run("InvalidExpression", func(t *testing.T) {
		_, err := c.Search(Query{Where: `price +`})
		assert.ErrorIs(t, err, ErrInvalidQuery)

		_, err = c.Search(Query{Where: `price`})
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})
}
