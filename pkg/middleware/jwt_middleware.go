package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/pkg/jwt"
	"seungpyo.lee/odinbook/pkg/util"
)

// TokenVerifier resolves a session token to the user id it was issued for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (uint, error)
}

// AuthMiddleware returns a Gin middleware that validates bearer tokens and
// injects the user id into the context. A missing token is 401, a bad or
// expired one is 403.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := verifier.VerifyToken(c.Request.Context(), BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenMissing):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			case errors.Is(err, jwt.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token expired"})
			default:
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			}
			return
		}
		util.SetUserID(c, userID)
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value. Anything
// other than "Bearer <token>" yields "".
func BearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
