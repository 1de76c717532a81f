package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/model"
	"seungpyo.lee/odinbook/pkg/util"
)

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the client-safe message of a domain error, or a generic
// 500 for anything unexpected. Only the latter is logged here.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		c.JSON(statusFor(de.Kind), model.ErrorResponse{Message: de.Message})
		return
	}
	log.ErrorContext(c.Request.Context(), "request failed",
		"request_id", util.GetRequestID(c),
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Internal server error"})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: message})
}

// currentUser reads the id set by the auth middleware. Routes without the
// middleware never get here with a user.
func currentUser(c *gin.Context) (uint, bool) {
	uid, ok := util.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Access token required"})
	}
	return uid, ok
}
