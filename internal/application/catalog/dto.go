package catalog

import (
	"time"

	"github.com/oryizon/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// SaveProductRequest represents a request to create or update a product.
// An empty ID creates a new product; a non-empty ID updates the existing one.
type SaveProductRequest struct {
	ID            string                `json:"id"`
	Name          string                `json:"name" binding:"required,min=1,max=200"`
	Price         decimal.Decimal       `json:"price" binding:"required"`
	DiscountPrice *decimal.Decimal      `json:"discountPrice"`
	Description   string                `json:"description" binding:"max=5000"`
	Category      string                `json:"category" binding:"max=100"`
	Rating        *float64              `json:"rating" binding:"omitempty,min=0,max=5"`
	Reviews       *int                  `json:"reviews" binding:"omitempty,min=0"`
	Benefits      []string              `json:"benefits"`
	Nutrition     []NutritionRowRequest `json:"nutrition"`
	Ingredients   string                `json:"ingredients" binding:"max=2000"`
}

// NutritionRowRequest is a single label/value pair in the nutrition editor
type NutritionRowRequest struct {
	Label string `json:"label" binding:"required,max=100"`
	Value string `json:"value" binding:"required,max=100"`
}

// SaveBlogRequest represents a request to create or update a blog post
type SaveBlogRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title" binding:"required,min=1,max=300"`
	Excerpt string `json:"excerpt" binding:"max=2000"`
	Image   string `json:"image" binding:"max=2000"`
	Content string `json:"content"`
}

// UpsertContactInfoRequest represents a request to replace the public
// contact details
type UpsertContactInfoRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required,max=500"`
	Phone   string `json:"phone" binding:"required,max=50"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Price          decimal.Decimal        `json:"price"`
	DiscountPrice  *decimal.Decimal       `json:"discountPrice,omitempty"`
	EffectivePrice decimal.Decimal        `json:"effectivePrice"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	Image          string                 `json:"image"`
	Images         []string               `json:"images"`
	Rating         float64                `json:"rating"`
	Reviews        int                    `json:"reviews"`
	Benefits       []string               `json:"benefits"`
	Nutrition      []NutritionRowResponse `json:"nutrition"`
	Ingredients    string                 `json:"ingredients"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// NutritionRowResponse is a single nutrition row in API responses
type NutritionRowResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BlogResponse represents a blog post in API responses
type BlogResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Image    string `json:"image"`
	Content  string `json:"content"`
}

// ContactInfoResponse represents the public contact details
type ContactInfoResponse struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	nutrition := make([]NutritionRowResponse, 0, len(p.Nutrition))
	for _, row := range p.Nutrition {
		nutrition = append(nutrition, NutritionRowResponse{Label: row.Label, Value: row.Value})
	}

	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		EffectivePrice: p.EffectivePrice(),
		Description:    p.Description,
		Category:       p.Category,
		Image:          p.Image,
		Images:         append([]string{}, p.Images...),
		Rating:         p.Rating,
		Reviews:        p.Reviews,
		Benefits:       append([]string{}, p.Benefits...),
		Nutrition:      nutrition,
		Ingredients:    p.Ingredients,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}

// ToBlogResponse converts a domain BlogPost to BlogResponse
func ToBlogResponse(b *catalog.BlogPost) BlogResponse {
	return BlogResponse{
		ID:       b.ID,
		Title:    b.Title,
		Excerpt:  b.Excerpt,
		Date:     b.Date,
		ReadTime: b.ReadTime,
		Image:    b.Image,
		Content:  b.Content,
	}
}

// ToBlogResponses converts a slice of domain BlogPosts
func ToBlogResponses(posts []catalog.BlogPost) []BlogResponse {
	responses := make([]BlogResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToBlogResponse(&posts[i]))
	}
	return responses
}

// ToContactInfoResponse converts domain ContactInfo
func ToContactInfoResponse(c *catalog.ContactInfo) ContactInfoResponse {
	return ContactInfoResponse{
		Email:   c.Email,
		Address: c.Address,
		Phone:   c.Phone,
	}
}
