package server

import (
	"fmt"
	"strings"

	"foodgram/internal/cache"
	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

const ingredientSearchLimit = 50

// GetIngredients handles GET /api/ingredients. The optional name parameter
// is a case-preserving prefix filter.
func (s *Server) GetIngredients(c *fiber.Ctx) error {
	namePrefix := strings.TrimSpace(c.Query("name"))

	var views []ingredientView
	key := fmt.Sprintf("ingredients:search:%s", namePrefix)
	err := cache.CacheAside(c.Context(), key, &views, s.cacheTTL(), func() error {
		ingredients, err := s.ingredientRepo.Search(c.Context(), namePrefix, ingredientSearchLimit)
		if err != nil {
			return err
		}
		views = make([]ingredientView, 0, len(ingredients))
		for i := range ingredients {
			views = append(views, buildIngredientView(&ingredients[i]))
		}
		return nil
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(views)
}

// GetIngredient handles GET /api/ingredients/:id
func (s *Server) GetIngredient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ingredient, err := s.ingredientRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(buildIngredientView(ingredient))
}
