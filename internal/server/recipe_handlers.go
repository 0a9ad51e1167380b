package server

import (
	"strings"

	"foodgram/internal/models"
	"foodgram/internal/service"

	"github.com/gofiber/fiber/v2"
)

type recipeRequest struct {
	Ingredients []service.IngredientAmount `json:"ingredients"`
	Tags        []uint                     `json:"tags"`
	Image       string                     `json:"image"`
	Name        string                     `json:"name"`
	Text        string                     `json:"text"`
	CookingTime int                        `json:"cooking_time"`
}

func (r recipeRequest) toInput() service.RecipeInput {
	return service.RecipeInput{
		Name:        r.Name,
		Text:        r.Text,
		Image:       r.Image,
		CookingTime: r.CookingTime,
		TagIDs:      r.Tags,
		Ingredients: r.Ingredients,
	}
}

// GetRecipes handles GET /api/recipes. Filters: author, tags (repeatable,
// matches any), is_favorited and is_in_shopping_cart relative to the viewer.
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	pagination := parsePagination(c)
	viewerID := s.optionalUserID(c)

	in := service.ListRecipesInput{
		AuthorID:      uint(c.QueryInt("author", 0)),
		OnlyFavorited: c.QueryBool("is_favorited", false),
		OnlyInCart:    c.QueryBool("is_in_shopping_cart", false),
		Limit:         pagination.Limit,
		Offset:        pagination.Offset(),
	}
	// Both ?tags=a&tags=b and ?tags=a,b are accepted
	for _, raw := range c.Context().QueryArgs().PeekMulti("tags") {
		for _, slug := range strings.Split(string(raw), ",") {
			if slug != "" {
				in.TagSlugs = append(in.TagSlugs, slug)
			}
		}
	}

	recipes, total, err := s.recipeService.List(c.Context(), viewerID, in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	views, err := s.buildRecipeViews(c, viewerID, recipes)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(paginatedResponse(c, pagination, total, views))
}

// GetRecipe handles GET /api/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID := s.optionalUserID(c)

	recipe, err := s.recipeService.Get(c.Context(), id, viewerID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	subscribed, err := s.subscriptionService.IsSubscribed(c.Context(), viewerID, recipe.AuthorID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(buildRecipeView(recipe, subscribed))
}

// CreateRecipe handles POST /api/recipes
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	recipe, err := s.recipeService.Create(c.Context(), userID, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildRecipeView(recipe, false))
}

// UpdateRecipe handles PATCH and PUT /api/recipes/:id
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	admin, err := s.isAdmin(c, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	recipe, err := s.recipeService.Update(c.Context(), userID, admin, id, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	subscribed, err := s.subscriptionService.IsSubscribed(c.Context(), userID, recipe.AuthorID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(buildRecipeView(recipe, subscribed))
}

// DeleteRecipe handles DELETE /api/recipes/:id
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	admin, err := s.isAdmin(c, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if err := s.recipeService.Delete(c.Context(), userID, admin, id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// buildRecipeViews renders recipe projections with the viewer's author
// subscription flags resolved in one query.
func (s *Server) buildRecipeViews(c *fiber.Ctx, viewerID uint, recipes []models.Recipe) ([]recipeView, error) {
	authorIDs := make([]uint, 0, len(recipes))
	for i := range recipes {
		authorIDs = append(authorIDs, recipes[i].AuthorID)
	}
	subscribed, err := s.subscriptionService.SubscribedFlags(c.Context(), viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]recipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, buildRecipeView(&recipes[i], subscribed[recipes[i].AuthorID]))
	}
	return views, nil
}
