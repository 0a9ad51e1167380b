package models

import (
	"time"
)

// RecipeSet names a user↔recipe membership collection. Favorites and the
// shopping cart share one toggle code path parametrized by this identifier.
type RecipeSet string

const (
	// RecipeSetFavorites is the user's favorites collection.
	RecipeSetFavorites RecipeSet = "favorites"
	// RecipeSetShoppingCart is the user's shopping cart.
	RecipeSetShoppingCart RecipeSet = "shopping_cart"
)

// Label returns a human-readable name for error messages.
func (s RecipeSet) Label() string {
	switch s {
	case RecipeSetFavorites:
		return "favorites"
	case RecipeSetShoppingCart:
		return "shopping cart"
	}
	return string(s)
}

// Favorite marks a recipe as favorited by a user.
// The combination of UserID and RecipeID must be unique.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingCart marks a recipe as queued for the user's shopping list.
// The combination of UserID and RecipeID must be unique.
type ShoppingCart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription is a directed follow edge from a user to an author.
// Self-subscription is rejected at the service layer; uniqueness is on the pair.
type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_subscription_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_subscription_user_author" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingListItem is one aggregated row of the exported shopping list:
// amounts summed across all cart recipes sharing (name, measurement unit).
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int    `json:"total"`
}
