package server

import (
	"fmt"
	"time"

	"foodgram/internal/cache"
	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

const tagListCacheKey = "tags:all"

// GetTags handles GET /api/tags. The catalog is small and rarely changes,
// so the full list is served through the cache.
func (s *Server) GetTags(c *fiber.Ctx) error {
	var views []tagView
	err := cache.CacheAside(c.Context(), tagListCacheKey, &views, s.cacheTTL(), func() error {
		tags, err := s.tagRepo.List(c.Context())
		if err != nil {
			return err
		}
		views = make([]tagView, 0, len(tags))
		for i := range tags {
			views = append(views, buildTagView(&tags[i]))
		}
		return nil
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(views)
}

// GetTag handles GET /api/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var view tagView
	key := fmt.Sprintf("tags:%d", id)
	cacheErr := cache.CacheAside(c.Context(), key, &view, s.cacheTTL(), func() error {
		tag, err := s.tagRepo.GetByID(c.Context(), id)
		if err != nil {
			return err
		}
		view = buildTagView(tag)
		return nil
	})
	if cacheErr != nil {
		return models.RespondWithAppError(c, cacheErr)
	}
	return c.JSON(view)
}

func (s *Server) cacheTTL() time.Duration {
	ttl := s.config.CacheTTL
	if ttl <= 0 {
		ttl = 600
	}
	return time.Duration(ttl) * time.Second
}
