package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/oryizon/storefront/internal/domain/shared"
)

// BlogPost represents an editorial article on the storefront.
//
// Content is stored as raw HTML exactly as the editor submitted it. The
// storefront treats stored content as untrusted: consumers rendering it
// outside a sandboxed context must sanitize it first.
type BlogPost struct {
	shared.BaseEntity
	Title    string `gorm:"type:varchar(300);not null"`
	Excerpt  string `gorm:"type:text"`
	Date     string `gorm:"type:varchar(50)"` // Display date, free-form (e.g. "Oct 12, 2023")
	ReadTime string `gorm:"type:varchar(30)"` // Display estimate (e.g. "5 min read")
	Image    string `gorm:"type:text"`
	Content  string `gorm:"type:text"` // Raw HTML, untrusted at render time
}

// TableName returns the table name for GORM
func (BlogPost) TableName() string {
	return "blogs"
}

// NewBlogPost creates a new blog post with a generated identifier
func NewBlogPost(title, excerpt, content string) (*BlogPost, error) {
	if err := validateBlogTitle(title); err != nil {
		return nil, err
	}

	post := &BlogPost{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Excerpt:    excerpt,
		Content:    content,
		Date:       time.Now().Format("Jan 2, 2006"),
	}
	post.ReadTime = estimateReadTime(content)

	return post, nil
}

// Update updates the post's editable fields and refreshes the read-time estimate
func (b *BlogPost) Update(title, excerpt, content, image string) error {
	if err := validateBlogTitle(title); err != nil {
		return err
	}

	b.Title = title
	b.Excerpt = excerpt
	b.Content = content
	b.Image = image
	b.ReadTime = estimateReadTime(content)
	b.UpdatedAt = time.Now()

	return nil
}

// estimateReadTime derives a display estimate from word count at ~200 wpm
func estimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// validateBlogTitle validates the blog post title
func validateBlogTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Blog title cannot be empty")
	}
	if len(title) > 300 {
		return shared.NewDomainError("INVALID_TITLE", "Blog title cannot exceed 300 characters")
	}
	return nil
}
