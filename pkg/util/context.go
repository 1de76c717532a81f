package util

import (
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "user_id"
	requestIDKey = "request_id"
)

// SetUserID records the authenticated user for downstream handlers.
func SetUserID(c *gin.Context, userID uint) {
	c.Set(userIDKey, userID)
}

// GetUserID extracts the user id injected by the auth middleware.
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	if !ok || uid == 0 {
		return 0, false
	}
	return uid, true
}

func SetRequestID(c *gin.Context, id string) {
	c.Set(requestIDKey, id)
}

// GetRequestID returns the id assigned by the request logger, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
