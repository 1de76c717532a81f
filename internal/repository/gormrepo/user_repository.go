package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/util"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db  *gorm.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB, opts ...Option) domain.UserRepository {
	o := buildOptions(opts)
	return &userRepository{db: db, now: o.now}
}

// Create inserts a new user after checking username and email are free.
// user is only updated once the row is committed.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	row := *user
	row.ID = 0
	row.Email = util.NormalizeIdentity(user.Email)
	row.Username = util.NormalizeIdentity(user.Username)
	row.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&domain.User{}).
			Where("email = ? OR username = ?", row.Email, row.Username).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("failed to check user uniqueness: %w", err)
		}
		if taken > 0 {
			return domain.ErrDuplicateAccount
		}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateAccount
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	*user = row
	return nil
}

// FindByID retrieves a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, bool, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, bool, error) {
	return r.first(ctx, "email = ?", util.NormalizeIdentity(email))
}

// FindByUsername retrieves a user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, bool, error) {
	return r.first(ctx, "username = ?", util.NormalizeIdentity(username))
}

func (r *userRepository) ListExcluding(ctx context.Context, id uint) ([]*domain.User, error) {
	var users []*domain.User
	if err := r.db.WithContext(ctx).Where("id <> ?", id).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return int(n), nil
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*domain.User, bool, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, true, nil
}
