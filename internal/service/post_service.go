package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/util"
)

type postService struct {
	postRepo  domain.PostRepository
	maxLength int
	log       *slog.Logger
}

// NewPostService creates a new PostService. Content longer than maxLength
// characters is rejected; zero or less disables the bound.
func NewPostService(postRepo domain.PostRepository, maxLength int, log *slog.Logger) domain.PostService {
	return &postService{postRepo: postRepo, maxLength: maxLength, log: log.With("component", "post_service")}
}

// CreatePost stores trimmed content for an authenticated user.
func (s *postService) CreatePost(ctx context.Context, userID uint, content string) (*domain.Post, error) {
	content = util.NormalizeContent(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	if s.maxLength > 0 && util.RuneLen(content) > s.maxLength {
		return nil, domain.ErrContentTooLong
	}
	post, err := s.postRepo.Create(ctx, userID, content)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyContent) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.log.InfoContext(ctx, "post created", "post_id", post.ID, "user_id", userID)
	return post, nil
}
