package catalog

import (
	"context"

	"github.com/oryizon/storefront/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// BlogRepository defines the persistence interface for blog posts
type BlogRepository interface {
	FindByID(ctx context.Context, id string) (*BlogPost, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]BlogPost, error)
	Save(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id string) error
}

// ContactInfoRepository defines the persistence interface for the
// contact-info singleton
type ContactInfoRepository interface {
	Get(ctx context.Context) (*ContactInfo, error)
	Upsert(ctx context.Context, info *ContactInfo) error
}
