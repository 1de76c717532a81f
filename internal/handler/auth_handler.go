package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/model"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	Service domain.AuthService
	log     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Service: service, log: log}
}

// Register handles POST /api/auth/register for user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	res, err := h.Service.Register(c.Request.Context(), domain.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, model.AuthResponse{
		Message: "User created successfully",
		Token:   res.Token,
		User:    res.User,
	})
}

// Login handles POST /api/auth/login for user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	res, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    res.User,
	})
}
