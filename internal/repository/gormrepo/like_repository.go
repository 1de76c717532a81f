package gormrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"seungpyo.lee/odinbook/internal/domain"
)

type likeRepository struct {
	db  *gorm.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewLikeRepository creates a new LikeRepository with the given GORM DB instance.
func NewLikeRepository(db *gorm.DB, opts ...Option) domain.LikeRepository {
	o := buildOptions(opts)
	return &likeRepository{db: db, now: o.now}
}

// Toggle deletes the pair's like if present, otherwise creates it, in one transaction.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&domain.Like{})
		if res.Error != nil {
			return fmt.Errorf("failed to remove like: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
		like := &domain.Like{
			ID:        uuid.NewString(),
			UserID:    userID,
			PostID:    postID,
			CreatedAt: r.now(),
		}
		if err := tx.Create(like).Error; err != nil {
			return fmt.Errorf("failed to create like: %w", err)
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *likeRepository) IsLikedBy(ctx context.Context, userID, postID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return n > 0, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID uint) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("post_id = ?", postID).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return int(n), nil
}
