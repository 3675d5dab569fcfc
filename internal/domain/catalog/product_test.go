package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with defaults", func(t *testing.T) {
		product, err := NewProduct("Moringa Capsules", decimal.NewFromInt(450))
		require.NoError(t, err)

		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "Moringa Capsules", product.Name)
		assert.True(t, decimal.NewFromInt(450).Equal(product.Price))
		assert.Equal(t, 5.0, product.Rating)
		assert.Equal(t, 0, product.Reviews)
		assert.Empty(t, product.Images)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("", decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Moringa Tea", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestProduct_EffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount *decimal.Decimal
		want     int64
	}{
		{"no discount", 399, nil, 399},
		{"lower discount applies", 450, decPtr(399), 399},
		{"equal discount ignored", 399, decPtr(399), 399},
		{"higher discount ignored", 399, decPtr(500), 399},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: decimal.NewFromInt(tt.price), DiscountPrice: tt.discount}
			assert.True(t, decimal.NewFromInt(tt.want).Equal(p.EffectivePrice()))
		})
	}
}

func TestProduct_HasDiscount(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(450), DiscountPrice: decPtr(399)}
	assert.True(t, p.HasDiscount())

	p.DiscountPrice = decPtr(450)
	assert.False(t, p.HasDiscount())

	p.DiscountPrice = nil
	assert.False(t, p.HasDiscount())
}

func TestProduct_ImageGallery(t *testing.T) {
	product, err := NewProduct("Moringa Powder", decimal.NewFromInt(399))
	require.NoError(t, err)

	t.Run("first upload becomes primary", func(t *testing.T) {
		require.NoError(t, product.AddImage("https://cdn.example.com/a.jpg"))
		assert.Equal(t, "https://cdn.example.com/a.jpg", product.Image)
	})

	t.Run("later uploads keep primary", func(t *testing.T) {
		require.NoError(t, product.AddImage("https://cdn.example.com/b.jpg"))
		require.NoError(t, product.AddImage("https://cdn.example.com/c.jpg"))
		assert.Equal(t, "https://cdn.example.com/a.jpg", product.Image)
		assert.Len(t, product.Images, 3)
	})

	t.Run("removing primary promotes successor", func(t *testing.T) {
		require.NoError(t, product.RemoveImage(0))
		assert.Equal(t, "https://cdn.example.com/b.jpg", product.Image)
		assert.Len(t, product.Images, 2)
	})

	t.Run("removing middle image keeps primary", func(t *testing.T) {
		require.NoError(t, product.RemoveImage(1))
		assert.Equal(t, "https://cdn.example.com/b.jpg", product.Image)
	})

	t.Run("removing last image clears primary", func(t *testing.T) {
		require.NoError(t, product.RemoveImage(0))
		assert.Empty(t, product.Image)
		assert.Empty(t, product.Images)
	})

	t.Run("out of range index rejected", func(t *testing.T) {
		assert.Error(t, product.RemoveImage(0))
		assert.Error(t, product.RemoveImage(-1))
	})

	t.Run("empty url rejected", func(t *testing.T) {
		assert.Error(t, product.AddImage(""))
	})
}

func TestProduct_Nutrition(t *testing.T) {
	product, err := NewProduct("Moringa Powder", decimal.NewFromInt(399))
	require.NoError(t, err)

	product.AddNutritionRow("Protein", "8.5g")
	product.AddNutritionRow("Iron", "15%")
	require.Len(t, product.Nutrition, 2)

	require.NoError(t, product.UpdateNutritionRow(1, "Iron", "18%"))
	assert.Equal(t, "18%", product.Nutrition[1].Value)

	require.NoError(t, product.RemoveNutritionRow(0))
	require.Len(t, product.Nutrition, 1)
	assert.Equal(t, "Iron", product.Nutrition[0].Label)

	assert.Error(t, product.UpdateNutritionRow(5, "x", "y"))
	assert.Error(t, product.RemoveNutritionRow(5))
}

func TestSeedData(t *testing.T) {
	t.Run("seed products carry protected ids", func(t *testing.T) {
		products := SeedProducts()
		require.NotEmpty(t, products)
		assert.Equal(t, "p1", products[0].ID)
		assert.True(t, IsProtectedProduct("p1"))
		assert.False(t, IsProtectedProduct("p2"))
	})

	t.Run("seed blogs carry protected ids", func(t *testing.T) {
		posts := SeedBlogPosts()
		require.Len(t, posts, 2)
		assert.True(t, IsProtectedBlog("b1"))
		assert.True(t, IsProtectedBlog("b2"))
		assert.False(t, IsProtectedBlog("b3"))
	})

	t.Run("default contact info uses singleton id", func(t *testing.T) {
		info := DefaultContactInfo()
		assert.Equal(t, ContactInfoID, info.ID)
		assert.NotEmpty(t, info.Email)
	})
}
