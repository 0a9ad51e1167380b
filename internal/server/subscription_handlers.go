package server

import (
	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// recipesLimitParam caps the recipe preview embedded in author cards.
// Zero means no cap, which is the behavior when the param is absent.
func recipesLimitParam(c *fiber.Ctx) int {
	limit := c.QueryInt("recipes_limit", 0)
	if limit < 0 {
		limit = 0
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}
	return limit
}

// Subscribe handles POST /api/users/:id/subscribe
func (s *Server) Subscribe(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	card, err := s.subscriptionService.Subscribe(c.Context(), currentUserID(c), authorID, recipesLimitParam(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(buildAuthorCardView(card))
}

// Unsubscribe handles DELETE /api/users/:id/subscribe
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.subscriptionService.Unsubscribe(c.Context(), currentUserID(c), authorID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptions handles GET /api/users/subscriptions
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	pagination := parsePagination(c)

	cards, total, err := s.subscriptionService.ListSubscriptions(
		c.Context(), currentUserID(c), pagination.Limit, pagination.Offset(), recipesLimitParam(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	views := make([]authorCardView, 0, len(cards))
	for i := range cards {
		views = append(views, buildAuthorCardView(&cards[i]))
	}
	return c.JSON(paginatedResponse(c, pagination, total, views))
}
