package service

import (
	"context"

	"foodgram/internal/export"
	"foodgram/internal/models"
	"foodgram/internal/repository"
)

// ShoppingListService aggregates the user's shopping cart into a flat
// ingredient list and renders it for download.
type ShoppingListService struct {
	membershipRepo repository.MembershipRepository
}

func NewShoppingListService(membershipRepo repository.MembershipRepository) *ShoppingListService {
	return &ShoppingListService{membershipRepo: membershipRepo}
}

// Items returns the aggregated list: amounts summed per (name, unit) pair,
// ordered alphabetically. An empty cart yields an empty list, not an error.
func (s *ShoppingListService) Items(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.membershipRepo.AggregateCart(ctx, userID)
}

// ExportPDF renders the aggregated list as a PDF document.
func (s *ShoppingListService) ExportPDF(ctx context.Context, userID uint) ([]byte, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := export.ShoppingListPDF(items)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pdfBytes, nil
}
