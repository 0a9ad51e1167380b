package repository

import (
	"context"
	"errors"

	"foodgram/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for follow-edge data operations
type SubscriptionRepository interface {
	// Create inserts the follow edge. Returns a Conflict error on a duplicate,
	// including the concurrent-insert race caught by the unique index.
	Create(ctx context.Context, userID, authorID uint) error
	// Delete removes the follow edge; Conflict error when no edge exists.
	Delete(ctx context.Context, userID, authorID uint) error
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	// Authors returns the users the follower is subscribed to, newest first.
	Authors(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error)
	// SubscribedFlags reports which of the candidate authors the user follows.
	SubscribedFlags(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, userID, authorID uint) error {
	err := r.db.WithContext(ctx).Create(&models.Subscription{UserID: userID, AuthorID: authorID}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Already subscribed to this author")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, userID, authorID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewConflictError("Not subscribed to this author")
	}
	return nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *subscriptionRepository) Authors(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var users []models.User
	err = r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.user_id = ?", userID).
		Order("subscriptions.created_at DESC, subscriptions.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}

func (r *subscriptionRepository) SubscribedFlags(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	flags := make(map[uint]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return flags, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, id := range ids {
		flags[id] = true
	}
	return flags, nil
}
