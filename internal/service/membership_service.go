package service

import (
	"context"

	"foodgram/internal/models"
	"foodgram/internal/repository"
)

// MembershipService implements the favorite and shopping-cart toggles. Both
// collections share this one code path, parametrized by models.RecipeSet.
type MembershipService struct {
	membershipRepo repository.MembershipRepository
	recipeRepo     repository.RecipeRepository
}

func NewMembershipService(membershipRepo repository.MembershipRepository, recipeRepo repository.RecipeRepository) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		recipeRepo:     recipeRepo,
	}
}

// Add puts the recipe into the user's set and returns the recipe for the
// short response projection. A duplicate add is a Conflict; the unique index
// catches the concurrent case the pre-check misses.
func (s *MembershipService) Add(ctx context.Context, set models.RecipeSet, userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.membershipRepo.Exists(ctx, set, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Recipe is already in " + set.Label())
	}

	if err := s.membershipRepo.Add(ctx, set, userID, recipeID); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Remove takes the recipe out of the user's set. Removing a recipe that is
// not in the set is a Conflict.
func (s *MembershipService) Remove(ctx context.Context, set models.RecipeSet, userID, recipeID uint) error {
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return err
	}
	return s.membershipRepo.Remove(ctx, set, userID, recipeID)
}
