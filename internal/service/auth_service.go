package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/util"
	"seungpyo.lee/odinbook/pkg/jwt"
)

// authService implements domain.AuthService using a UserRepository.
type authService struct {
	repo         domain.UserRepository
	tokenManager jwt.TokenManager
	log          *slog.Logger
}

// NewAuthService creates a new AuthService with the given UserRepository.
func NewAuthService(repo domain.UserRepository, tokenManager jwt.TokenManager, log *slog.Logger) domain.AuthService {
	return &authService{repo: repo, tokenManager: tokenManager, log: log.With("component", "auth_service")}
}

// Register creates a new user account and signs the user in.
func (s *authService) Register(ctx context.Context, in domain.RegisterInput) (_ *domain.AuthResult, err error) {
	username := util.NormalizeIdentity(in.Username)
	email := util.NormalizeIdentity(in.Email)
	log := s.log.With(slog.Group("user", "username", username, "email", email))

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "register user failed", "error", err)
		} else {
			log.InfoContext(ctx, "user registered")
		}
	}()

	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hashedPassword, err := util.HashPassword(in.Password)
	if errors.Is(err, util.ErrPasswordTooLong) {
		return nil, domain.ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  in.DisplayName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return s.issue(user)
}

// Login authenticates a user by email and password.
func (s *authService) Login(ctx context.Context, email, password string) (_ *domain.AuthResult, err error) {
	email = util.NormalizeIdentity(email)
	log := s.log.With(slog.Group("user", "email", email))

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "login failed", "error", err)
		} else {
			log.DebugContext(ctx, "login successful")
		}
	}()

	user, ok, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := util.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(user)
}

// VerifyToken returns the user id bound into a valid session token.
func (s *authService) VerifyToken(_ context.Context, token string) (uint, error) {
	claims, err := s.tokenManager.ValidateAccessToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *authService) issue(user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := s.tokenManager.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Sanitize(),
	}, nil
}
