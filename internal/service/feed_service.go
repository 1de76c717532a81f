package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"seungpyo.lee/odinbook/internal/domain"
)

// feedService is the feed assembler: it joins posts with authors and the
// viewer's like state.
type feedService struct {
	posts domain.PostRepository
	users domain.UserRepository
	likes domain.LikeRepository
}

func NewFeedService(posts domain.PostRepository, users domain.UserRepository, likes domain.LikeRepository) domain.FeedService {
	return &feedService{posts: posts, users: users, likes: likes}
}

// AssembleFeed returns every post newest first; equal timestamps fall back to
// ascending id. A post whose author cannot be resolved keeps a nil Author.
func (s *feedService) AssembleFeed(ctx context.Context, viewerID uint) ([]domain.FeedPost, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	authors := make(map[uint]*domain.AuthorSummary)
	feed := make([]domain.FeedPost, 0, len(posts))
	for _, p := range posts {
		author, seen := authors[p.UserID]
		if !seen {
			author, err = s.resolveAuthor(ctx, p.UserID)
			if err != nil {
				return nil, err
			}
			authors[p.UserID] = author
		}
		isLiked, err := s.likes.IsLikedBy(ctx, viewerID, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check like: %w", err)
		}
		likesCount, err := s.likes.CountForPost(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count likes: %w", err)
		}
		feed = append(feed, domain.FeedPost{
			ID:         p.ID,
			UserID:     p.UserID,
			Content:    p.Content,
			CreatedAt:  p.CreatedAt,
			Author:     author,
			IsLiked:    isLiked,
			LikesCount: likesCount,
		})
	}

	slices.SortFunc(feed, func(a, b domain.FeedPost) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return feed, nil
}

func (s *feedService) resolveAuthor(ctx context.Context, userID uint) (*domain.AuthorSummary, error) {
	user, ok, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &domain.AuthorSummary{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}, nil
}
