package service

import (
	"context"
	"fmt"
	"log/slog"

	"seungpyo.lee/odinbook/internal/domain"
)

type likeService struct {
	posts domain.PostRepository
	likes domain.LikeRepository
	log   *slog.Logger
}

func NewLikeService(posts domain.PostRepository, likes domain.LikeRepository, log *slog.Logger) domain.LikeService {
	return &likeService{posts: posts, likes: likes, log: log.With("component", "like_service")}
}

// ToggleLike flips the caller's like on an existing post. Unknown posts fail
// with ErrPostNotFound so no Like ever points at a post that never existed.
func (s *likeService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	_, ok, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("failed to get post: %w", err)
	}
	if !ok {
		return false, domain.ErrPostNotFound
	}
	liked, err := s.likes.Toggle(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	s.log.DebugContext(ctx, "like toggled", "post_id", postID, "user_id", userID, "liked", liked)
	return liked, nil
}
