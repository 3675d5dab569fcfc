package catalog

import (
	"time"

	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/oryizon/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the storefront catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseEntity
	Name          string           `gorm:"type:varchar(200);not null"`
	Price         decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(18,2)"` // Optional promotional price
	Description   string           `gorm:"type:text"`
	Category      string           `gorm:"type:varchar(100);index"`
	Image         string           `gorm:"type:text"`  // Primary display image, always Images[0] when Images is non-empty
	Images        StringList       `gorm:"type:jsonb"` // Ordered gallery, first entry is primary
	Rating        float64          `gorm:"not null;default:5"`
	Reviews       int              `gorm:"not null;default:0"`
	Benefits      StringList       `gorm:"type:jsonb"`
	Nutrition     NutritionFacts   `gorm:"type:jsonb"`
	Ingredients   string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with a generated identifier
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Rating:     5,
		Reviews:    0,
		Images:     StringList{},
		Benefits:   StringList{},
		Nutrition:  NutritionFacts{},
	}, nil
}

// EffectivePrice returns the price a shopper actually pays: the discount
// price when one is set and strictly lower than the base price, otherwise
// the base price. A discount equal to or above the base price is ignored.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price) {
		return *p.DiscountPrice
	}
	return p.Price
}

// EffectivePriceMoney returns the effective price as a Money value object
func (p *Product) EffectivePriceMoney() valueobject.Money {
	return valueobject.NewMoneyINR(p.EffectivePrice())
}

// HasDiscount reports whether a discount price is set and actually cheaper
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price)
}

// Update updates the product's basic information
func (p *Product) Update(name, description, category, ingredients string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Category = category
	p.Ingredients = ingredients
	p.UpdatedAt = time.Now()

	return nil
}

// SetPricing sets the base price and optional discount price
func (p *Product) SetPricing(price decimal.Decimal, discountPrice *decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if discountPrice != nil && discountPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Discount price cannot be negative")
	}

	p.Price = price
	p.DiscountPrice = discountPrice
	p.UpdatedAt = time.Now()

	return nil
}

// SetRating sets the displayed rating and review count
func (p *Product) SetRating(rating float64, reviews int) error {
	if rating < 0 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}
	if reviews < 0 {
		return shared.NewDomainError("INVALID_RATING", "Review count cannot be negative")
	}

	p.Rating = rating
	p.Reviews = reviews
	p.UpdatedAt = time.Now()

	return nil
}

// SetBenefits replaces the benefit bullet list
func (p *Product) SetBenefits(benefits []string) {
	p.Benefits = StringList(benefits)
	p.UpdatedAt = time.Now()
}

// AddImage appends an image URL to the gallery.
// The first image in the gallery is always the primary display image.
func (p *Product) AddImage(url string) error {
	if url == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Image URL cannot be empty")
	}

	p.Images = append(p.Images, url)
	p.syncPrimaryImage()
	p.UpdatedAt = time.Now()

	return nil
}

// RemoveImage removes the image at the given gallery index.
// Removing index 0 promotes the next image to primary; removing the last
// image leaves the product with an empty primary image.
func (p *Product) RemoveImage(index int) error {
	if index < 0 || index >= len(p.Images) {
		return shared.NewDomainError("INVALID_IMAGE", "Image index out of range")
	}

	p.Images = append(p.Images[:index], p.Images[index+1:]...)
	p.syncPrimaryImage()
	p.UpdatedAt = time.Now()

	return nil
}

// syncPrimaryImage keeps the Image field aligned with Images[0]
func (p *Product) syncPrimaryImage() {
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	} else {
		p.Image = ""
	}
}

// AddNutritionRow appends a row to the nutrition facts panel
func (p *Product) AddNutritionRow(label, value string) {
	p.Nutrition = append(p.Nutrition, NutritionRow{Label: label, Value: value})
	p.UpdatedAt = time.Now()
}

// UpdateNutritionRow updates the row at the given index
func (p *Product) UpdateNutritionRow(index int, label, value string) error {
	if index < 0 || index >= len(p.Nutrition) {
		return shared.NewDomainError("INVALID_NUTRITION", "Nutrition row index out of range")
	}

	p.Nutrition[index] = NutritionRow{Label: label, Value: value}
	p.UpdatedAt = time.Now()

	return nil
}

// RemoveNutritionRow removes the row at the given index
func (p *Product) RemoveNutritionRow(index int) error {
	if index < 0 || index >= len(p.Nutrition) {
		return shared.NewDomainError("INVALID_NUTRITION", "Nutrition row index out of range")
	}

	p.Nutrition = append(p.Nutrition[:index], p.Nutrition[index+1:]...)
	p.UpdatedAt = time.Now()

	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
