// Package taxonomy holds the fixed category and payment-method tables that
// purchases reference. The tables are static application data, not user state.
package taxonomy

import (
	"strings"

	"budget-tracker/internal/models"
)

var categories = []models.Category{
	{ID: "food-dining", Name: "Food & Dining", Color: "#FF6B6B", Icon: "utensils", Description: "Restaurants, groceries, and food delivery"},
	{ID: "transportation", Name: "Transportation", Color: "#4ECDC4", Icon: "car", Description: "Gas, public transit, rideshare, parking"},
	{ID: "shopping", Name: "Shopping", Color: "#45B7D1", Icon: "shopping-bag", Description: "Clothing, electronics, general retail"},
	{ID: "entertainment", Name: "Entertainment", Color: "#96CEB4", Icon: "film", Description: "Movies, games, subscriptions, events"},
	{ID: "health-fitness", Name: "Health & Fitness", Color: "#FFEAA7", Icon: "heart", Description: "Medical, pharmacy, gym, wellness"},
	{ID: "home-garden", Name: "Home & Garden", Color: "#DDA0DD", Icon: "home", Description: "Utilities, maintenance, home improvement"},
	{ID: "education", Name: "Education", Color: "#98D8C8", Icon: "book", Description: "Tuition, books, courses, training"},
	{ID: "travel", Name: "Travel", Color: "#F7DC6F", Icon: "plane", Description: "Hotels, flights, vacation expenses"},
	{ID: "insurance", Name: "Insurance", Color: "#BB8FCE", Icon: "shield", Description: "Auto, health, home, life insurance"},
	{ID: "personal-care", Name: "Personal Care", Color: "#F8C471", Icon: "user", Description: "Haircuts, beauty, personal items"},
	{ID: "gifts-donations", Name: "Gifts & Donations", Color: "#85C1E9", Icon: "gift", Description: "Presents, charity, donations"},
	{ID: "business", Name: "Business", Color: "#A2D2FF", Icon: "briefcase", Description: "Office supplies, business meals, equipment"},
	{ID: "taxes", Name: "Taxes", Color: "#FFB3BA", Icon: "calculator", Description: "Income tax, property tax, tax preparation"},
	{ID: "other", Name: "Other", Color: "#D3D3D3", Icon: "more-horizontal", Description: "Miscellaneous expenses"},
}

// Categories returns the fixed category taxonomy.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by its identifier.
func CategoryByID(id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// CategoryByName looks up a category by display name, case-insensitively.
func CategoryByName(name string) (models.Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.Category{}, false
}
