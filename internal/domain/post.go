package domain

import (
	"context"
	"time"
)

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// PostRepository is the PostStore. Posts are only ever appended.
type PostRepository interface {
	// Create stores a post whose content was already validated and trimmed.
	Create(ctx context.Context, userID uint, content string) (*Post, error)
	FindByID(ctx context.Context, id uint) (*Post, bool, error)
	// ListAll returns posts in insertion order.
	ListAll(ctx context.Context) ([]*Post, error)
	Count(ctx context.Context) (int, error)
}

type PostService interface {
	CreatePost(ctx context.Context, userID uint, content string) (*Post, error)
}
