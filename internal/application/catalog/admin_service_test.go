package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
)

func newAdminService(products *MockProductRepository, blogs *MockBlogRepository, contacts *MockContactInfoRepository, storage *MockObjectStorage) *AdminService {
	return NewAdminService(products, blogs, contacts, storage, nil)
}

func TestAdminService_SaveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with empty id", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
		got, err := svc.SaveProduct(ctx, SaveProductRequest{
			Name:  "Moringa Soap",
			Price: decimalFromInt(120),
			Nutrition: []NutritionRowRequest{
				{Label: "Protein", Value: "2g"},
			},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Moringa Soap", got.Name)
		require.Len(t, got.Nutrition, 1)
		assert.Equal(t, "Protein", got.Nutrition[0].Label)
		repo.AssertExpectations(t)
	})

	t.Run("updates existing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		existing, err := catalog.NewProduct("Old Name", decimalFromInt(100))
		require.NoError(t, err)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
		discount := decimalFromInt(80)
		got, err := svc.SaveProduct(ctx, SaveProductRequest{
			ID:            existing.ID,
			Name:          "New Name",
			Price:         decimalFromInt(100),
			DiscountPrice: &discount,
		})

		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
		assert.True(t, decimalFromInt(80).Equal(got.EffectivePrice))
	})

	t.Run("unknown id creates under that id", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", ctx, "p9").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.ID == "p9"
		})).Return(nil)

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
		got, err := svc.SaveProduct(ctx, SaveProductRequest{ID: "p9", Name: "Moringa Tea", Price: decimalFromInt(250)})

		require.NoError(t, err)
		assert.Equal(t, "p9", got.ID)
		assert.Equal(t, "Moringa Tea", got.Name)
		repo.AssertExpectations(t)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindByID", ctx, "p9").Return(nil, errors.New("connection reset"))

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
		_, err := svc.SaveProduct(ctx, SaveProductRequest{ID: "p9", Name: "X", Price: decimalFromInt(1)})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAdminService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("protected product is refused", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))

		err := svc.DeleteProduct(ctx, "p1")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes regular product", func(t *testing.T) {
		repo := new(MockProductRepository)
		existing, err := catalog.NewProduct("Disposable", decimalFromInt(10))
		require.NoError(t, err)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Delete", ctx, existing.ID).Return(nil)

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
		require.NoError(t, svc.DeleteProduct(ctx, existing.ID))
		repo.AssertExpectations(t)
	})
}

func TestAdminService_UploadProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("first upload becomes primary", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorage)
		product, err := catalog.NewProduct("Moringa Oil", decimalFromInt(350))
		require.NoError(t, err)

		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)
		storage.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/"+product.ID+"/") && strings.HasSuffix(key, ".jpg")
		}), []byte("fake-jpeg"), "image/jpeg").Return("https://cdn.example.com/abc.jpg", nil)

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), storage)
		got, err := svc.UploadProductImage(ctx, product.ID, "photo.JPG", []byte("fake-jpeg"), "image/jpeg")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/abc.jpg", got.Image)
		require.Len(t, got.Images, 1)
		storage.AssertExpectations(t)
	})

	t.Run("storage failure leaves product untouched", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorage)
		product, err := catalog.NewProduct("Moringa Oil", decimalFromInt(350))
		require.NoError(t, err)

		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("bucket unavailable"))

		svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), storage)
		_, err = svc.UploadProductImage(ctx, product.ID, "photo.png", []byte("data"), "image/png")

		assert.Error(t, err)
		assert.Empty(t, product.Images)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		svc := newAdminService(new(MockProductRepository), new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
		_, err := svc.UploadProductImage(ctx, "p1", "photo.png", nil, "image/png")
		assert.Error(t, err)
	})
}

func TestAdminService_RemoveProductImage(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProductRepository)
	product, err := catalog.NewProduct("Moringa Oil", decimalFromInt(350))
	require.NoError(t, err)
	require.NoError(t, product.AddImage("https://cdn.example.com/1.jpg"))
	require.NoError(t, product.AddImage("https://cdn.example.com/2.jpg"))

	repo.On("FindByID", ctx, product.ID).Return(product, nil)
	repo.On("Save", ctx, product).Return(nil)

	svc := newAdminService(repo, new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
	got, err := svc.RemoveProductImage(ctx, product.ID, 0)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/2.jpg", got.Image, "second image must be promoted to primary")
	require.Len(t, got.Images, 1)
}

func TestAdminService_SaveBlog(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with empty id", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.BlogPost")).Return(nil)

		svc := newAdminService(new(MockProductRepository), repo, new(MockContactInfoRepository), new(MockObjectStorage))
		got, err := svc.SaveBlog(ctx, SaveBlogRequest{
			Title:   "Why Moringa",
			Excerpt: "A short primer",
			Content: "<p>Moringa is a nutrient-dense leaf.</p>",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.NotEmpty(t, got.ReadTime)
	})

	t.Run("updates existing post", func(t *testing.T) {
		repo := new(MockBlogRepository)
		existing, err := catalog.NewBlogPost("Old", "x", "<p>old</p>")
		require.NoError(t, err)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		svc := newAdminService(new(MockProductRepository), repo, new(MockContactInfoRepository), new(MockObjectStorage))
		got, err := svc.SaveBlog(ctx, SaveBlogRequest{
			ID:      existing.ID,
			Title:   "Updated",
			Content: "<p>new body</p>",
		})

		require.NoError(t, err)
		assert.Equal(t, "Updated", got.Title)
	})
}

func TestAdminService_DeleteBlog(t *testing.T) {
	ctx := context.Background()

	for _, protected := range []string{"b1", "b2"} {
		t.Run("protected "+protected, func(t *testing.T) {
			svc := newAdminService(new(MockProductRepository), new(MockBlogRepository), new(MockContactInfoRepository), new(MockObjectStorage))
			err := svc.DeleteBlog(ctx, protected)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "FORBIDDEN", domainErr.Code)
		})
	}
}

func TestAdminService_UpsertContactInfo(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContactInfoRepository)
	repo.On("Upsert", ctx, mock.AnythingOfType("*catalog.ContactInfo")).Return(nil)

	svc := newAdminService(new(MockProductRepository), new(MockBlogRepository), repo, new(MockObjectStorage))
	got, err := svc.UpsertContactInfo(ctx, UpsertContactInfoRequest{
		Email:   "care@oryizon.com",
		Address: "Bengaluru",
		Phone:   "+91 22222 22222",
	})

	require.NoError(t, err)
	assert.Equal(t, "care@oryizon.com", got.Email)
	repo.AssertExpectations(t)
}
