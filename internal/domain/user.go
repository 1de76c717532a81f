package domain

import (
	"context"
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:80"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:120"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"` // Hidden in JSON responses
	DisplayName  string    `json:"displayName" gorm:"not null;size:120"`
	Bio          string    `json:"bio" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the outward view of a User. It has no password field at all,
// so nothing that serializes it can leak the hash.
type PublicUser struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Sanitize strips the password hash.
func (u *User) Sanitize() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt,
	}
}

// SanitizeAll maps Sanitize over users, preserving order.
func SanitizeAll(users []*User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitize())
	}
	return out
}

// UserRepository is the UserStore. Lookups report absence through the bool,
// never through the error. Username and email comparisons are case-insensitive.
type UserRepository interface {
	// Create assigns ID and CreatedAt. Fails with ErrDuplicateAccount when the
	// username or email is taken.
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, bool, error)
	FindByEmail(ctx context.Context, email string) (*User, bool, error)
	FindByUsername(ctx context.Context, username string) (*User, bool, error)
	// ListExcluding returns every user except id, in insertion order.
	ListExcluding(ctx context.Context, id uint) ([]*User, error)
	Count(ctx context.Context) (int, error)
}

type AuthService interface {
	Register(ctx context.Context, req RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyToken(ctx context.Context, token string) (uint, error)
}

type UserService interface {
	GetMe(ctx context.Context, userID uint) (PublicUser, error)
	ListOthers(ctx context.Context, userID uint) ([]PublicUser, error)
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      PublicUser
}
