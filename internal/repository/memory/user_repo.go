package memory

import (
	"context"
	"sync"
	"time"

	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/util"
)

type userRepository struct {
	mu         sync.RWMutex
	lastID     uint
	users      map[uint]domain.User
	order      []uint
	byEmail    map[string]uint
	byUsername map[string]uint
	now        func() time.Time
}

// NewUserRepository creates an empty in-memory UserStore.
func NewUserRepository(opts ...Option) domain.UserRepository {
	o := buildOptions(opts)
	return &userRepository{
		users:      make(map[uint]domain.User),
		byEmail:    make(map[string]uint),
		byUsername: make(map[string]uint),
		now:        o.now,
	}
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	email := util.NormalizeIdentity(user.Email)
	username := util.NormalizeIdentity(user.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return domain.ErrDuplicateAccount
	}
	if _, taken := r.byUsername[username]; taken {
		return domain.ErrDuplicateAccount
	}

	r.lastID++
	user.ID = r.lastID
	user.Email = email
	user.Username = username
	user.CreatedAt = r.now()

	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	r.byEmail[email] = user.ID
	r.byUsername[username] = user.ID
	return nil
}

func (r *userRepository) FindByID(_ context.Context, id uint) (*domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(id)
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[util.NormalizeIdentity(email)]
	if !ok {
		return nil, false, nil
	}
	return r.lookup(id)
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[util.NormalizeIdentity(username)]
	if !ok {
		return nil, false, nil
	}
	return r.lookup(id)
}

func (r *userRepository) ListExcluding(_ context.Context, id uint) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.order))
	for _, uid := range r.order {
		if uid == id {
			continue
		}
		u := r.users[uid]
		out = append(out, &u)
	}
	return out, nil
}

func (r *userRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// lookup returns a copy; callers must hold the lock.
func (r *userRepository) lookup(id uint) (*domain.User, bool, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}
