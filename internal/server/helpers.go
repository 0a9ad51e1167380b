package server

import (
	"context"
	"errors"
	"fmt"

	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPageLimit   = 6
	maxPaginationLimit = 100
)

// Pagination holds the parsed page and limit query parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset converts the page number into a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePagination extracts page and limit query parameters. Pages are
// 1-based; the limit is clamped to maxPaginationLimit.
func parsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	return Pagination{Page: page, Limit: limit}
}

// paginatedResponse wraps results in the list envelope with next and
// previous page links.
func paginatedResponse(c *fiber.Ctx, p Pagination, total int64, results any) fiber.Map {
	var next, previous any
	if int64(p.Offset()+p.Limit) < total {
		next = pageURL(c, p.Page+1, p.Limit)
	}
	if p.Page > 1 {
		previous = pageURL(c, p.Page-1, p.Limit)
	}
	return fiber.Map{
		"count":    total,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

// pageURL rebuilds the current path with updated page and limit parameters.
// Other query parameters (filters) are preserved.
func pageURL(c *fiber.Ctx, page, limit int) string {
	query := ""
	args := c.Context().QueryArgs()
	args.Set("page", fmt.Sprintf("%d", page))
	args.Set("limit", fmt.Sprintf("%d", limit))
	query = args.String()
	return c.BaseURL() + c.Path() + "?" + query
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	return param
}

// currentUserID returns the authenticated user's ID from locals. Only valid
// behind AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// isAdmin checks whether the given user has admin privileges.
func (s *Server) isAdmin(c *fiber.Ctx, userID uint) (bool, error) {
	return s.isAdminByUserID(c.Context(), userID)
}

func (s *Server) isAdminByUserID(ctx context.Context, userID uint) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("is_admin").First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
