package model

import "seungpyo.lee/odinbook/internal/domain"

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	DisplayName string `json:"displayName" binding:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

type UserResponse struct {
	User domain.PublicUser `json:"user"`
}

type UsersResponse struct {
	Users []domain.PublicUser `json:"users"`
}

// CreatePostRequest leaves content unvalidated here so blank content reaches
// the service and gets its specific error.
type CreatePostRequest struct {
	Content string `json:"content"`
}

type PostResponse struct {
	Message string       `json:"message"`
	Post    *domain.Post `json:"post"`
}

type FeedResponse struct {
	Posts []domain.FeedPost `json:"posts"`
}

type LikeResponse struct {
	Message string `json:"message"`
	IsLiked bool   `json:"isLiked"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Users   string `json:"users"`
	Posts   string `json:"posts"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
