package service

import (
	"context"
	"fmt"

	"seungpyo.lee/odinbook/internal/domain"
)

type userService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) domain.UserService {
	return &userService{repo: repo}
}

// GetMe returns the caller's own account.
func (s *userService) GetMe(ctx context.Context, userID uint) (domain.PublicUser, error) {
	user, ok, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		return domain.PublicUser{}, domain.ErrUserNotFound
	}
	return user.Sanitize(), nil
}

// ListOthers returns every account except the caller's, oldest first.
func (s *userService) ListOthers(ctx context.Context, userID uint) ([]domain.PublicUser, error) {
	users, err := s.repo.ListExcluding(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return domain.SanitizeAll(users), nil
}
