package domain

import (
	"context"
	"time"
)

// AuthorSummary is the only slice of a User the feed exposes.
type AuthorSummary struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// FeedPost is a Post joined with its author and the viewer's like state.
// Author is nil when the author record cannot be resolved.
type FeedPost struct {
	ID         uint           `json:"id"`
	UserID     uint           `json:"userId"`
	Content    string         `json:"content"`
	CreatedAt  time.Time      `json:"createdAt"`
	Author     *AuthorSummary `json:"author"`
	IsLiked    bool           `json:"isLiked"`
	LikesCount int            `json:"likesCount"`
}

type FeedService interface {
	AssembleFeed(ctx context.Context, viewerID uint) ([]FeedPost, error)
}
