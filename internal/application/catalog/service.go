package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
)

// StoreService serves the public, read-only catalog surface.
//
// The storefront must render even when the database is unreachable or has
// never been seeded, so every read falls back to the built-in seed content
// when the repository errors or returns nothing.
type StoreService struct {
	productRepo catalog.ProductRepository
	blogRepo    catalog.BlogRepository
	contactRepo catalog.ContactInfoRepository
	logger      *zap.Logger
}

// NewStoreService creates a new StoreService
func NewStoreService(
	productRepo catalog.ProductRepository,
	blogRepo catalog.BlogRepository,
	contactRepo catalog.ContactInfoRepository,
	logger *zap.Logger,
) *StoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreService{
		productRepo: productRepo,
		blogRepo:    blogRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Products returns all products, newest first, falling back to seed data
// when the store is empty or unreachable.
func (s *StoreService) Products(ctx context.Context) []ProductResponse {
	filter := shared.DefaultFilter()
	filter.PageSize = 200
	filter.OrderBy = "created_at"
	filter.OrderDir = "desc"

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Warn("product listing failed, serving seed catalog", zap.Error(err))
		return ToProductResponses(catalog.SeedProducts())
	}
	if len(products) == 0 {
		return ToProductResponses(catalog.SeedProducts())
	}

	return ToProductResponses(products)
}

// Product returns a single product by ID, checking the seed catalog when
// the repository cannot serve it.
func (s *StoreService) Product(ctx context.Context, id string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		for _, seeded := range catalog.SeedProducts() {
			if seeded.ID == id {
				response := ToProductResponse(&seeded)
				return &response, nil
			}
		}
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// BlogPosts returns all blog posts, newest first, falling back to seed data
func (s *StoreService) BlogPosts(ctx context.Context) []BlogResponse {
	filter := shared.DefaultFilter()
	filter.PageSize = 200
	filter.OrderBy = "created_at"
	filter.OrderDir = "desc"

	posts, err := s.blogRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Warn("blog listing failed, serving seed posts", zap.Error(err))
		return ToBlogResponses(catalog.SeedBlogPosts())
	}
	if len(posts) == 0 {
		return ToBlogResponses(catalog.SeedBlogPosts())
	}

	return ToBlogResponses(posts)
}

// BlogPost returns a single post by ID, checking the seed posts when the
// repository cannot serve it.
func (s *StoreService) BlogPost(ctx context.Context, id string) (*BlogResponse, error) {
	post, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		for _, seeded := range catalog.SeedBlogPosts() {
			if seeded.ID == id {
				response := ToBlogResponse(&seeded)
				return &response, nil
			}
		}
		return nil, err
	}

	response := ToBlogResponse(post)
	return &response, nil
}

// ContactInfo returns the public contact details, falling back to the
// built-in defaults.
func (s *StoreService) ContactInfo(ctx context.Context) ContactInfoResponse {
	info, err := s.contactRepo.Get(ctx)
	if err != nil {
		s.logger.Warn("contact info lookup failed, serving defaults", zap.Error(err))
		defaults := catalog.DefaultContactInfo()
		return ToContactInfoResponse(&defaults)
	}
	return ToContactInfoResponse(info)
}
