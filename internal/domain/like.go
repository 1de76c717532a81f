package domain

import (
	"context"
	"time"
)

// Like marks that UserID currently likes PostID. At most one exists per pair.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_like_user_post"`
	PostID    uint      `json:"postId" gorm:"not null;uniqueIndex:idx_like_user_post;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeRepository is the LikeStore. It does not check that the post exists.
type LikeRepository interface {
	// Toggle flips the pair and returns the resulting state. Check and flip
	// happen atomically with respect to other toggles.
	Toggle(ctx context.Context, userID, postID uint) (bool, error)
	IsLikedBy(ctx context.Context, userID, postID uint) (bool, error)
	CountForPost(ctx context.Context, postID uint) (int, error)
}

type LikeService interface {
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
}
