package server

import (
	"foodgram/internal/middleware"
	"foodgram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart.
// It renders the viewer's aggregated shopping list as a PDF attachment.
// An empty cart still yields a valid document.
func (s *Server) DownloadShoppingCart(c *fiber.Ctx) error {
	pdfBytes, err := s.shoppingListService.ExportPDF(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.ShoppingListExports.Inc()

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_list.pdf"`)
	return c.Send(pdfBytes)
}
