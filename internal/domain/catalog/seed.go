package catalog

import (
	"github.com/oryizon/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Protected seed identifiers. These records ship with the storefront and
// must survive admin deletion so the shop never renders empty.
var (
	protectedProductIDs = map[string]bool{"p1": true}
	protectedBlogIDs    = map[string]bool{"b1": true, "b2": true}
)

// IsProtectedProduct reports whether the product is a protected seed record
func IsProtectedProduct(id string) bool {
	return protectedProductIDs[id]
}

// IsProtectedBlog reports whether the blog post is a protected seed record
func IsProtectedBlog(id string) bool {
	return protectedBlogIDs[id]
}

// SeedProducts returns the bundled catalog used when the data gateway is
// unreachable or the products table is empty
func SeedProducts() []Product {
	return []Product{
		{
			BaseEntity:  shared.NewBaseEntityWithID("p1"),
			Name:        "Organic Moringa Powder (250g)",
			Price:       decimal.NewFromInt(399),
			Category:    "Pure Moringa Leaf Powder",
			Description: "Our signature 100% Organic sun-dried Moringa Oleifera leaf powder. This pure moringa powder acts as a natural immunity booster powder and superfood powder. Perfect for weight management, digestion support, and skin-hair wellness. An essential ayurvedic moringa powder for your daily wellness journey.",
			Image:       "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=800",
			Images:      StringList{"https://images.unsplash.com/photo-1615485290382-441e4d049cb5?auto=format&fit=crop&q=80&w=800"},
			Rating:      4.9,
			Reviews:     128,
			Benefits: StringList{
				"Natural Energy Powder",
				"Immunity Booster Powder",
				"Digestion Support Powder",
				"Skin Hair Wellness",
			},
			Nutrition: NutritionFacts{
				{Label: "Protein", Value: "8.5g"},
				{Label: "Iron", Value: "15%"},
				{Label: "Vitamin A", Value: "12%"},
			},
			Ingredients: "100% Organic Pure Moringa Leaf Powder",
		},
	}
}

// SeedBlogPosts returns the bundled editorial content used when the data
// gateway is unreachable or the blogs table is empty
func SeedBlogPosts() []BlogPost {
	return []BlogPost{
		{
			BaseEntity: shared.NewBaseEntityWithID("b1"),
			Title:      "The Miracle Tree: Why Organic Moringa Powder?",
			Excerpt:    "Discover why our pure moringa leaf powder is considered the ultimate herbal health supplement and natural energy booster.",
			Date:       "Oct 12, 2023",
			ReadTime:   "5 min read",
			Image:      "https://images.unsplash.com/photo-1512069772995-ec65ed45afd6?auto=format&fit=crop&q=80&w=800",
			Content:    "Moringa Oleifera has been used for centuries as an ayurvedic moringa powder...",
		},
		{
			BaseEntity: shared.NewBaseEntityWithID("b2"),
			Title:      "5 Ways to Use Superfood Powder in Recipes",
			Excerpt:    "From smoothies to savory dishes, learn how to easily incorporate this organic health supplement into your daily wellness routine.",
			Date:       "Nov 04, 2023",
			ReadTime:   "3 min read",
			Image:      "https://images.unsplash.com/photo-1623910398328-98e3b3b4f627?auto=format&fit=crop&q=80&w=800",
			Content:    "Adding natural moringa powder to your daily routine is easier than you think...",
		},
	}
}

// DefaultContactInfo returns the bundled contact details fallback
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		ID:      ContactInfoID,
		Email:   "hello@oryizon.com",
		Address: "Wellness Center, Mumbai",
		Phone:   "+91 98765 43210",
	}
}
