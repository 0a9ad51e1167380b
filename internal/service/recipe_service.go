package service

import (
	"context"
	"fmt"
	"strings"

	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/validation"
)

const maxRecipeNameLen = 200

// IngredientAmount is one ingredient reference in a recipe payload.
type IngredientAmount struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// RecipeInput is the write payload for creating or updating a recipe.
// Image is an optional base64 payload; on update an empty image keeps the
// stored one.
type RecipeInput struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []IngredientAmount
}

// ListRecipesInput narrows a recipe listing. OnlyFavorited and OnlyInCart
// are relative to the viewer; for an anonymous viewer they yield an empty
// page instead of an error.
type ListRecipesInput struct {
	AuthorID      uint
	TagSlugs      []string
	OnlyFavorited bool
	OnlyInCart    bool
	Limit         int
	Offset        int
}

type RecipeService struct {
	recipeRepo     repository.RecipeRepository
	tagRepo        repository.TagRepository
	ingredientRepo repository.IngredientRepository
	membershipRepo repository.MembershipRepository
	images         *ImageService
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	tagRepo repository.TagRepository,
	ingredientRepo repository.IngredientRepository,
	membershipRepo repository.MembershipRepository,
	images *ImageService,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		membershipRepo: membershipRepo,
		images:         images,
	}
}

// Create validates the payload, stores the image and writes the recipe with
// its ingredient and tag rows in one transaction.
func (s *RecipeService) Create(ctx context.Context, authorID uint, in RecipeInput) (*models.Recipe, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	ingredients, tagIDs, err := s.resolveReferences(ctx, in)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if in.Image != "" {
		imageURL, err = s.images.SaveRecipeImage(in.Image)
		if err != nil {
			return nil, err
		}
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        strings.TrimSpace(in.Name),
		Text:        strings.TrimSpace(in.Text),
		Image:       imageURL,
		CookingTime: in.CookingTime,
	}
	if err := s.recipeRepo.Create(ctx, recipe, ingredients, tagIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID, authorID)
}

// Update replaces the recipe's fields and junction rows. Only the author or
// an admin may update.
func (s *RecipeService) Update(ctx context.Context, userID uint, admin bool, recipeID uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID && !admin {
		return nil, models.NewForbiddenError("Only the author can modify this recipe")
	}

	if err := s.validateInput(in); err != nil {
		return nil, err
	}
	ingredients, tagIDs, err := s.resolveReferences(ctx, in)
	if err != nil {
		return nil, err
	}

	if in.Image != "" {
		imageURL, err := s.images.SaveRecipeImage(in.Image)
		if err != nil {
			return nil, err
		}
		recipe.Image = imageURL
	}

	recipe.Name = strings.TrimSpace(in.Name)
	recipe.Text = strings.TrimSpace(in.Text)
	recipe.CookingTime = in.CookingTime
	recipe.Tags = nil
	recipe.Ingredients = nil

	if err := s.recipeRepo.Update(ctx, recipe, ingredients, tagIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, recipeID, userID)
}

// Delete removes the recipe and everything referencing it, including other
// users' favorite and cart entries. Author or admin only.
func (s *RecipeService) Delete(ctx context.Context, userID uint, admin bool, recipeID uint) error {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID && !admin {
		return models.NewForbiddenError("Only the author can delete this recipe")
	}
	return s.recipeRepo.Delete(ctx, recipeID)
}

// Get returns the recipe with its favorite and cart flags computed for the
// viewer. Anonymous viewers get both flags false.
func (s *RecipeService) Get(ctx context.Context, recipeID, viewerID uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	recipes := []models.Recipe{*recipe}
	if err := s.annotateFlags(ctx, viewerID, recipes); err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

// List returns a page of recipes matching the filter, newest first, with
// viewer flags computed.
func (s *RecipeService) List(ctx context.Context, viewerID uint, in ListRecipesInput) ([]models.Recipe, int64, error) {
	if (in.OnlyFavorited || in.OnlyInCart) && viewerID == 0 {
		return []models.Recipe{}, 0, nil
	}

	filter := repository.RecipeFilter{
		AuthorID: in.AuthorID,
		TagSlugs: in.TagSlugs,
	}
	if in.OnlyFavorited {
		filter.FavoritedBy = viewerID
	}
	if in.OnlyInCart {
		filter.InCartOf = viewerID
	}

	recipes, total, err := s.recipeRepo.List(ctx, filter, in.Limit, in.Offset)
	if err != nil {
		return nil, 0, err
	}
	if err := s.annotateFlags(ctx, viewerID, recipes); err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (s *RecipeService) annotateFlags(ctx context.Context, viewerID uint, recipes []models.Recipe) error {
	if viewerID == 0 || len(recipes) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(recipes))
	for i := range recipes {
		ids = append(ids, recipes[i].ID)
	}

	favorited, err := s.membershipRepo.MemberFlags(ctx, models.RecipeSetFavorites, viewerID, ids)
	if err != nil {
		return err
	}
	inCart, err := s.membershipRepo.MemberFlags(ctx, models.RecipeSetShoppingCart, viewerID, ids)
	if err != nil {
		return err
	}

	for i := range recipes {
		recipes[i].IsFavorited = favorited[recipes[i].ID]
		recipes[i].IsInShoppingCart = inCart[recipes[i].ID]
	}
	return nil
}

func (s *RecipeService) validateInput(in RecipeInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.NewValidationError("Recipe name is required")
	}
	if len(name) > maxRecipeNameLen {
		return models.NewValidationError(fmt.Sprintf("Recipe name too long (max %d characters)", maxRecipeNameLen))
	}
	if strings.TrimSpace(in.Text) == "" {
		return models.NewValidationError("Recipe description is required")
	}
	if err := validation.ValidateCookingTime(in.CookingTime); err != nil {
		return models.NewValidationError(err.Error())
	}

	if len(in.TagIDs) == 0 {
		return models.NewValidationError("At least one tag is required")
	}
	seenTags := make(map[uint]bool, len(in.TagIDs))
	for _, id := range in.TagIDs {
		if seenTags[id] {
			return models.NewValidationError("Duplicate tag in recipe")
		}
		seenTags[id] = true
	}

	if len(in.Ingredients) == 0 {
		return models.NewValidationError("At least one ingredient is required")
	}
	seenIngredients := make(map[uint]bool, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		if seenIngredients[ing.ID] {
			return models.NewValidationError("Duplicate ingredient in recipe")
		}
		seenIngredients[ing.ID] = true
		if err := validation.ValidateAmount(ing.Amount); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return nil
}

// resolveReferences checks that every referenced tag and ingredient exists
// and builds the junction rows for the repository.
func (s *RecipeService) resolveReferences(ctx context.Context, in RecipeInput) ([]models.RecipeIngredient, []uint, error) {
	tags, err := s.tagRepo.GetByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(in.TagIDs) {
		return nil, nil, models.NewValidationError("One or more tags do not exist")
	}

	ingredientIDs := make([]uint, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
	}
	known, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(known) != len(ingredientIDs) {
		return nil, nil, models.NewValidationError("One or more ingredients do not exist")
	}

	rows := make([]models.RecipeIngredient, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		rows = append(rows, models.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	return rows, in.TagIDs, nil
}
