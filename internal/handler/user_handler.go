package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/model"
)

type UserHandler struct {
	Service domain.UserService
	log     *slog.Logger
}

func NewUserHandler(service domain.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{Service: service, log: log}
}

// GetMe handles GET /api/users/me.
func (h *UserHandler) GetMe(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.Service.GetMe(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.UserResponse{User: user})
}

// ListUsers handles GET /api/users and leaves the caller out.
func (h *UserHandler) ListUsers(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	users, err := h.Service.ListOthers(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.UsersResponse{Users: users})
}
