package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing is returned when no token was presented.
	ErrTokenMissing = errors.New("token is missing")
	// ErrTokenInvalid is returned when a token is malformed or its signature does not verify.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when a token has expired.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims defines the custom JWT claims structure. Only the subject user id
// and the expiry are bound into a token.
type Claims struct {
	UserID uint `json:"userId"`
	jwtlib.RegisteredClaims
}

// TokenManager provides methods for issuing and validating session tokens.
type TokenManager interface {
	// GenerateToken returns the signed token and the instant it stops being valid.
	GenerateToken(userID uint) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// Option customizes a TokenManager.
type Option func(*tokenManager)

// WithClock replaces the wall clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(m *tokenManager) {
		m.now = now
	}
}

// NewTokenManager creates a new TokenManager signing with secretKey; issued tokens live for ttl.
func NewTokenManager(secretKey string, ttl time.Duration, opts ...Option) TokenManager {
	m := &tokenManager{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type tokenManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// GenerateToken creates a new HS256 token for a user.
func (j *tokenManager) GenerateToken(userID uint) (string, time.Time, error) {
	expiresAt := j.now().Add(j.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenStr, expiresAt, nil
}

// ValidateAccessToken parses the token, verifies its signature and then its expiry.
func (j *tokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrTokenMissing
	}
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenString, claims, func(token *jwtlib.Token) (any, error) {
		return j.secretKey, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
