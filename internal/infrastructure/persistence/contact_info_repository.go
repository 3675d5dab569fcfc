package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/oryizon/storefront/internal/domain/shared"
)

// GormContactInfoRepository implements ContactInfoRepository using GORM.
// Contact info is a singleton row with a fixed primary key.
type GormContactInfoRepository struct {
	db *gorm.DB
}

// NewGormContactInfoRepository creates a new GormContactInfoRepository
func NewGormContactInfoRepository(db *gorm.DB) *GormContactInfoRepository {
	return &GormContactInfoRepository{db: db}
}

// Get returns the singleton contact-info row
func (r *GormContactInfoRepository) Get(ctx context.Context) (*catalog.ContactInfo, error) {
	var info catalog.ContactInfo
	if err := r.db.WithContext(ctx).First(&info, "id = ?", catalog.ContactInfoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Upsert inserts or replaces the singleton contact-info row
func (r *GormContactInfoRepository) Upsert(ctx context.Context, info *catalog.ContactInfo) error {
	info.ID = catalog.ContactInfoID
	info.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "address", "phone", "updated_at"}),
		}).
		Create(info).Error
}

// Ensure GormContactInfoRepository implements ContactInfoRepository
var _ catalog.ContactInfoRepository = (*GormContactInfoRepository)(nil)
