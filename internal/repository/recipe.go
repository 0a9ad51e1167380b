package repository

import (
	"context"
	"errors"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows recipe listings. Zero values mean "not filtered".
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint // user ID whose favorites restrict the listing
	InCartOf    uint // user ID whose shopping cart restricts the listing
}

// RecipeRepository defines the interface for recipe data operations.
// Create, Update and Delete write the recipe and all its junction rows as a
// single transaction; there is no partial-success state.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error
	Update(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients", "Author").Create(recipe).Error; err != nil {
			return err
		}
		return writeJunctions(tx, recipe.ID, ingredients, tagIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("Duplicate ingredient or tag in recipe")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient, tagIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients", "Author").Save(recipe).Error; err != nil {
			return err
		}
		// Junction rows are replaced wholesale; the transaction keeps the
		// recipe consistent for concurrent readers.
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		return writeJunctions(tx, recipe.ID, ingredients, tagIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewValidationError("Duplicate ingredient or tag in recipe")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func writeJunctions(tx *gorm.DB, recipeID uint, ingredients []models.RecipeIngredient, tagIDs []uint) error {
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].RecipeID = recipeID
		ingredients[i].Ingredient = models.Ingredient{}
	}
	if len(ingredients) > 0 {
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}
	}

	if len(tagIDs) > 0 {
		recipeTags := make([]models.RecipeTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			recipeTags = append(recipeTags, models.RecipeTag{RecipeID: recipeID, TagID: tagID})
		}
		if err := tx.Create(&recipeTags).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the recipe together with every junction row referencing it:
// ingredients, tags, favorites and shopping cart entries.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, junction := range []interface{}{
			&models.RecipeIngredient{},
			&models.RecipeTag{},
			&models.Favorite{},
			&models.ShoppingCart{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(junction).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Recipe{})

	if filter.AuthorID != 0 {
		base = base.Where("author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		// Membership subquery keeps the result free of join duplicates when a
		// recipe matches several of the requested slugs.
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		base = base.Where("recipes.id IN (?)", tagged)
	}
	if filter.FavoritedBy != 0 {
		favorited := r.db.Table("favorites").
			Select("favorites.recipe_id").
			Where("favorites.user_id = ?", filter.FavoritedBy)
		base = base.Where("recipes.id IN (?)", favorited)
	}
	if filter.InCartOf != 0 {
		carted := r.db.Table("shopping_carts").
			Select("shopping_carts.recipe_id").
			Where("shopping_carts.user_id = ?", filter.InCartOf)
		base = base.Where("recipes.id IN (?)", carted)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var recipes []models.Recipe
	err := base.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return recipes, total, nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error) {
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
