package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"seungpyo.lee/odinbook/internal/domain"
)

type postRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostRepository creates a new PostRepository with the given GORM DB instance.
func NewPostRepository(db *gorm.DB, opts ...Option) domain.PostRepository {
	o := buildOptions(opts)
	return &postRepository{db: db, now: o.now}
}

// Create inserts a new post into the database.
func (r *postRepository) Create(ctx context.Context, userID uint, content string) (*domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	post := &domain.Post{
		UserID:    userID,
		Content:   content,
		CreatedAt: r.now(),
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// FindByID retrieves a post by its ID from the database.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*domain.Post, bool, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, true, nil
}

// ListAll returns every post in insertion order.
func (r *postRepository) ListAll(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return int(n), nil
}
