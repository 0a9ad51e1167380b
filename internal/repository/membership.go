package repository

import (
	"context"
	"errors"
	"fmt"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// MembershipRepository is the single data path for user↔recipe membership
// sets (favorites and the shopping cart), parametrized by models.RecipeSet.
type MembershipRepository interface {
	// Add inserts the membership row. Returns a Conflict error when the row
	// already exists, including the race where a concurrent request wins the
	// insert: the composite unique index is the authoritative guard.
	Add(ctx context.Context, set models.RecipeSet, userID, recipeID uint) error
	// Remove deletes the membership row. Returns a Conflict error when there
	// is nothing to delete.
	Remove(ctx context.Context, set models.RecipeSet, userID, recipeID uint) error
	Exists(ctx context.Context, set models.RecipeSet, userID, recipeID uint) (bool, error)
	// MemberFlags reports which of the given recipes belong to the user's set.
	MemberFlags(ctx context.Context, set models.RecipeSet, userID uint, recipeIDs []uint) (map[uint]bool, error)
	// AggregateCart sums shopping-cart ingredient amounts grouped by
	// (ingredient name, measurement unit), ordered by the group key.
	AggregateCart(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Add(ctx context.Context, set models.RecipeSet, userID, recipeID uint) error {
	var err error
	switch set {
	case models.RecipeSetFavorites:
		err = r.db.WithContext(ctx).Create(&models.Favorite{UserID: userID, RecipeID: recipeID}).Error
	case models.RecipeSetShoppingCart:
		err = r.db.WithContext(ctx).Create(&models.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
	default:
		return models.NewInternalError(fmt.Errorf("unknown recipe set %q", set))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Recipe is already in " + set.Label())
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *membershipRepository) Remove(ctx context.Context, set models.RecipeSet, userID, recipeID uint) error {
	query := r.db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID)

	var res *gorm.DB
	switch set {
	case models.RecipeSetFavorites:
		res = query.Delete(&models.Favorite{})
	case models.RecipeSetShoppingCart:
		res = query.Delete(&models.ShoppingCart{})
	default:
		return models.NewInternalError(fmt.Errorf("unknown recipe set %q", set))
	}
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewConflictError("Recipe is not in " + set.Label())
	}
	return nil
}

func (r *membershipRepository) Exists(ctx context.Context, set models.RecipeSet, userID, recipeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID)

	var err error
	switch set {
	case models.RecipeSetFavorites:
		err = query.Model(&models.Favorite{}).Count(&count).Error
	case models.RecipeSetShoppingCart:
		err = query.Model(&models.ShoppingCart{}).Count(&count).Error
	default:
		return false, models.NewInternalError(fmt.Errorf("unknown recipe set %q", set))
	}
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *membershipRepository) MemberFlags(ctx context.Context, set models.RecipeSet, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	flags := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return flags, nil
	}

	query := r.db.WithContext(ctx).Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs)

	var ids []uint
	var err error
	switch set {
	case models.RecipeSetFavorites:
		err = query.Model(&models.Favorite{}).Pluck("recipe_id", &ids).Error
	case models.RecipeSetShoppingCart:
		err = query.Model(&models.ShoppingCart{}).Pluck("recipe_id", &ids).Error
	default:
		return nil, models.NewInternalError(fmt.Errorf("unknown recipe set %q", set))
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, id := range ids {
		flags[id] = true
	}
	return flags, nil
}

func (r *membershipRepository) AggregateCart(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT ingredients.name AS name,
		       ingredients.measurement_unit AS measurement_unit,
		       SUM(recipe_ingredients.amount) AS total
		FROM recipe_ingredients
		JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id
		JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id
		WHERE shopping_carts.user_id = ?
		GROUP BY ingredients.name, ingredients.measurement_unit
		ORDER BY ingredients.name ASC, ingredients.measurement_unit ASC`,
		userID).Scan(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
