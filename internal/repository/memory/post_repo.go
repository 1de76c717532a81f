package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"seungpyo.lee/odinbook/internal/domain"
)

type postRepository struct {
	mu     sync.RWMutex
	lastID uint
	posts  []domain.Post
	index  map[uint]int
	now    func() time.Time
}

// NewPostRepository creates an empty in-memory PostStore.
func NewPostRepository(opts ...Option) domain.PostRepository {
	o := buildOptions(opts)
	return &postRepository{index: make(map[uint]int), now: o.now}
}

func (r *postRepository) Create(_ context.Context, userID uint, content string) (*domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	post := domain.Post{
		ID:        r.lastID,
		UserID:    userID,
		Content:   content,
		CreatedAt: r.now(),
	}
	r.index[post.ID] = len(r.posts)
	r.posts = append(r.posts, post)
	return &post, nil
}

func (r *postRepository) FindByID(_ context.Context, id uint) (*domain.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, false, nil
	}
	p := r.posts[i]
	return &p, true, nil
}

func (r *postRepository) ListAll(_ context.Context) ([]*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Post, len(r.posts))
	for i := range r.posts {
		p := r.posts[i]
		out[i] = &p
	}
	return out, nil
}

func (r *postRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}
