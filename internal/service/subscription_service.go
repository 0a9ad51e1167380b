package service

import (
	"context"

	"foodgram/internal/models"
	"foodgram/internal/repository"
)

// AuthorCard is an author enriched with the subscription flag and a preview
// of their recipes, as rendered on the subscriptions page.
type AuthorCard struct {
	User         models.User
	IsSubscribed bool
	Recipes      []models.Recipe
	RecipesCount int64
}

type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	recipeRepo       repository.RecipeRepository
}

func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository, userRepo repository.UserRepository, recipeRepo repository.RecipeRepository) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		recipeRepo:       recipeRepo,
	}
}

// Subscribe creates the follow edge and returns the author card. Subscribing
// to yourself is rejected before any duplicate check.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, authorID uint, recipesLimit int) (*AuthorCard, error) {
	if userID == authorID {
		return nil, models.NewValidationError("Cannot subscribe to yourself")
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.subscriptionRepo.Exists(ctx, userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Already subscribed to this author")
	}

	if err := s.subscriptionRepo.Create(ctx, userID, authorID); err != nil {
		return nil, err
	}
	return s.buildCard(ctx, author, true, recipesLimit)
}

// Unsubscribe removes the follow edge; Conflict when there is none.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, authorID uint) error {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.subscriptionRepo.Delete(ctx, userID, authorID)
}

// IsSubscribed reports whether the user follows the author. An anonymous
// viewer (userID 0) is never subscribed.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID, authorID uint) (bool, error) {
	if userID == 0 || userID == authorID {
		return false, nil
	}
	return s.subscriptionRepo.Exists(ctx, userID, authorID)
}

// SubscribedFlags reports which of the candidate authors the user follows.
func (s *SubscriptionService) SubscribedFlags(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	return s.subscriptionRepo.SubscribedFlags(ctx, userID, authorIDs)
}

// ListSubscriptions returns author cards for every author the user follows,
// newest subscription first.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID uint, limit, offset, recipesLimit int) ([]AuthorCard, int64, error) {
	authors, total, err := s.subscriptionRepo.Authors(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	cards := make([]AuthorCard, 0, len(authors))
	for i := range authors {
		card, err := s.buildCard(ctx, &authors[i], true, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		cards = append(cards, *card)
	}
	return cards, total, nil
}

func (s *SubscriptionService) buildCard(ctx context.Context, author *models.User, subscribed bool, recipesLimit int) (*AuthorCard, error) {
	recipes, err := s.recipeRepo.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipeRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return &AuthorCard{
		User:         *author,
		IsSubscribed: subscribed,
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}
