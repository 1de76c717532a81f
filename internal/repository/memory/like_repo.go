package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"seungpyo.lee/odinbook/internal/domain"
)

type likeKey struct {
	userID uint
	postID uint
}

type likeRepository struct {
	mu     sync.RWMutex
	likes  map[likeKey]domain.Like
	counts map[uint]int
	now    func() time.Time
}

// NewLikeRepository creates an empty in-memory LikeStore.
func NewLikeRepository(opts ...Option) domain.LikeRepository {
	o := buildOptions(opts)
	return &likeRepository{
		likes:  make(map[likeKey]domain.Like),
		counts: make(map[uint]int),
		now:    o.now,
	}
}

func (r *likeRepository) Toggle(_ context.Context, userID, postID uint) (bool, error) {
	key := likeKey{userID: userID, postID: postID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, liked := r.likes[key]; liked {
		delete(r.likes, key)
		r.counts[postID]--
		if r.counts[postID] == 0 {
			delete(r.counts, postID)
		}
		return false, nil
	}
	r.likes[key] = domain.Like{
		ID:        uuid.NewString(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: r.now(),
	}
	r.counts[postID]++
	return true, nil
}

func (r *likeRepository) IsLikedBy(_ context.Context, userID, postID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, liked := r.likes[likeKey{userID: userID, postID: postID}]
	return liked, nil
}

func (r *likeRepository) CountForPost(_ context.Context, postID uint) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[postID], nil
}
