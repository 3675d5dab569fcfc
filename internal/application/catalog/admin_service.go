package catalog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
)

// AdminService handles the content-management side of the catalog:
// product and blog CRUD, image uploads, and the contact-info singleton.
type AdminService struct {
	productRepo catalog.ProductRepository
	blogRepo    catalog.BlogRepository
	contactRepo catalog.ContactInfoRepository
	storage     ObjectStorage
	logger      *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	productRepo catalog.ProductRepository,
	blogRepo catalog.BlogRepository,
	contactRepo catalog.ContactInfoRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		productRepo: productRepo,
		blogRepo:    blogRepo,
		contactRepo: contactRepo,
		storage:     storage,
		logger:      logger,
	}
}

// SaveProduct upserts a product. An empty req.ID creates a fresh record;
// a non-empty req.ID updates the existing record, or creates one under
// that ID when nothing matches, so callers can choose their own IDs the
// way the seed catalog does. Image fields are managed through the upload
// endpoints and are left untouched here.
func (s *AdminService) SaveProduct(ctx context.Context, req SaveProductRequest) (*ProductResponse, error) {
	var product *catalog.Product

	if req.ID == "" {
		created, err := catalog.NewProduct(req.Name, req.Price)
		if err != nil {
			return nil, err
		}
		product = created
	} else {
		existing, err := s.productRepo.FindByID(ctx, req.ID)
		switch {
		case err == nil:
			product = existing
		case errors.Is(err, shared.ErrNotFound):
			created, err := catalog.NewProduct(req.Name, req.Price)
			if err != nil {
				return nil, err
			}
			created.ID = req.ID
			product = created
		default:
			return nil, err
		}
	}

	if err := product.Update(req.Name, req.Description, req.Category, req.Ingredients); err != nil {
		return nil, err
	}
	if err := product.SetPricing(req.Price, req.DiscountPrice); err != nil {
		return nil, err
	}

	rating := product.Rating
	reviews := product.Reviews
	if req.Rating != nil {
		rating = *req.Rating
	}
	if req.Reviews != nil {
		reviews = *req.Reviews
	}
	if err := product.SetRating(rating, reviews); err != nil {
		return nil, err
	}

	if req.Benefits != nil {
		product.SetBenefits(req.Benefits)
	}
	if req.Nutrition != nil {
		rows := make(catalog.NutritionFacts, 0, len(req.Nutrition))
		for _, row := range req.Nutrition {
			rows = append(rows, catalog.NutritionRow{Label: row.Label, Value: row.Value})
		}
		product.Nutrition = rows
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// DeleteProduct removes a product. Seeded demo products are protected
// and cannot be deleted.
func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	if catalog.IsProtectedProduct(id) {
		return shared.NewDomainError("FORBIDDEN", "This product is part of the core catalog and cannot be deleted")
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.productRepo.Delete(ctx, id)
}

// UploadProductImage stores an image in the object store and appends its
// public URL to the product's gallery. The first uploaded image becomes
// the product's primary image.
func (s *AdminService) UploadProductImage(ctx context.Context, productID, filename string, data []byte, contentType string) (*ProductResponse, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Image payload is empty")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	key := imageObjectKey(productID, filename)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload product image: %w", err)
	}

	if err := product.AddImage(url); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product image uploaded",
		zap.String("product_id", productID),
		zap.String("key", key),
	)

	response := ToProductResponse(product)
	return &response, nil
}

// RemoveProductImage drops the gallery entry at the given index. Removing
// index 0 promotes the next image to primary.
func (s *AdminService) RemoveProductImage(ctx context.Context, productID string, index int) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.RemoveImage(index); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// SaveBlog creates a blog post when req.ID is empty, otherwise updates
// the existing one.
func (s *AdminService) SaveBlog(ctx context.Context, req SaveBlogRequest) (*BlogResponse, error) {
	var post *catalog.BlogPost

	if req.ID == "" {
		created, err := catalog.NewBlogPost(req.Title, req.Excerpt, req.Content)
		if err != nil {
			return nil, err
		}
		created.Image = req.Image
		post = created
	} else {
		existing, err := s.blogRepo.FindByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if err := existing.Update(req.Title, req.Excerpt, req.Content, req.Image); err != nil {
			return nil, err
		}
		post = existing
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	response := ToBlogResponse(post)
	return &response, nil
}

// DeleteBlog removes a blog post. Seeded posts are protected.
func (s *AdminService) DeleteBlog(ctx context.Context, id string) error {
	if catalog.IsProtectedBlog(id) {
		return shared.NewDomainError("FORBIDDEN", "This post is part of the core content and cannot be deleted")
	}

	if _, err := s.blogRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.blogRepo.Delete(ctx, id)
}

// UpsertContactInfo replaces the public contact details singleton
func (s *AdminService) UpsertContactInfo(ctx context.Context, req UpsertContactInfoRequest) (*ContactInfoResponse, error) {
	info, err := catalog.NewContactInfo(req.Email, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Upsert(ctx, info); err != nil {
		return nil, err
	}

	response := ToContactInfoResponse(info)
	return &response, nil
}

// imageObjectKey builds a collision-free object key for a product image,
// keeping the original extension for content-type sniffing downstream.
func imageObjectKey(productID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("products/%s/%s%s", productID, uuid.New().String(), ext)
}
