package server

import (
	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// The favorite and shopping cart endpoints are the same toggle over
// different membership sets; each pair delegates to addToSet/removeFromSet.

// FavoriteRecipe handles POST /api/recipes/:id/favorite
func (s *Server) FavoriteRecipe(c *fiber.Ctx) error {
	return s.addToSet(c, models.RecipeSetFavorites)
}

// UnfavoriteRecipe handles DELETE /api/recipes/:id/favorite
func (s *Server) UnfavoriteRecipe(c *fiber.Ctx) error {
	return s.removeFromSet(c, models.RecipeSetFavorites)
}

// AddToShoppingCart handles POST /api/recipes/:id/shopping_cart
func (s *Server) AddToShoppingCart(c *fiber.Ctx) error {
	return s.addToSet(c, models.RecipeSetShoppingCart)
}

// RemoveFromShoppingCart handles DELETE /api/recipes/:id/shopping_cart
func (s *Server) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return s.removeFromSet(c, models.RecipeSetShoppingCart)
}

func (s *Server) addToSet(c *fiber.Ctx, set models.RecipeSet) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	recipe, err := s.membershipService.Add(c.Context(), set, currentUserID(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildRecipeShortView(recipe))
}

func (s *Server) removeFromSet(c *fiber.Ctx, set models.RecipeSet) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.membershipService.Remove(c.Context(), set, currentUserID(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
