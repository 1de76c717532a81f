package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/model"
)

type HealthHandler struct {
	users domain.UserRepository
	posts domain.PostRepository
	log   *slog.Logger
}

func NewHealthHandler(users domain.UserRepository, posts domain.PostRepository, log *slog.Logger) *HealthHandler {
	return &HealthHandler{users: users, posts: posts, log: log}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.users.Count(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	posts, err := h.posts.Count(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:  "OK",
		Message: "Odin-Book API is running!",
		Users:   fmt.Sprintf("%d users", users),
		Posts:   fmt.Sprintf("%d posts", posts),
	})
}
