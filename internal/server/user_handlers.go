package server

import (
	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	pagination := parsePagination(c)
	viewerID := s.optionalUserID(c)

	users, total, err := s.userService.ListUsers(c.Context(), pagination.Limit, pagination.Offset())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	ids := make([]uint, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}
	subscribed, err := s.subscriptionService.SubscribedFlags(c.Context(), viewerID, ids)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, buildUserView(&users[i], subscribed[users[i].ID]))
	}
	return c.JSON(paginatedResponse(c, pagination, total, views))
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(buildUserView(user, false))
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	viewerID := s.optionalUserID(c)
	subscribed, err := s.subscriptionService.IsSubscribed(c.Context(), viewerID, id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(buildUserView(user, subscribed))
}
