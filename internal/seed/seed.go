// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Options controls how much demo data the presets generate.
type Options struct {
	Users             int
	Ingredients       int
	RecipesPerUser    int
	MaxDays           int // how far back created_at timestamps spread
	FavoritesPerUser  int
	CartItemsPerUser  int
	SubscriptionsEach int
}

// DefaultOptions is the demo preset used by cmd/seed.
func DefaultOptions() Options {
	return Options{
		Users:             10,
		Ingredients:       60,
		RecipesPerUser:    4,
		MaxDays:           90,
		FavoritesPerUser:  5,
		CartItemsPerUser:  3,
		SubscriptionsEach: 3,
	}
}

// RunDemo populates the database with a browsable demo dataset: users, the
// tag catalog, an ingredient catalog, recipes and a social mesh of
// favorites, cart entries and subscriptions.
func RunDemo(db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	tags, err := f.CreateDefaultTags()
	if err != nil {
		return fmt.Errorf("seeding tags: %w", err)
	}

	ingredients, err := f.CreateIngredients(opts.Ingredients)
	if err != nil {
		return fmt.Errorf("seeding ingredients: %w", err)
	}

	users, err := f.CreateUsers(opts.Users)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	for _, user := range users {
		for i := 0; i < opts.RecipesPerUser; i++ {
			if _, err := f.CreateRecipe(user, tags, ingredients); err != nil {
				return fmt.Errorf("seeding recipes for user %d: %w", user.ID, err)
			}
		}
	}

	if err := f.CreateSocialMesh(users); err != nil {
		return fmt.Errorf("seeding social mesh: %w", err)
	}

	log.Printf("Seeded %d users, %d tags, %d ingredients, ~%d recipes",
		len(users), len(tags), len(ingredients), len(users)*opts.RecipesPerUser)
	return nil
}
