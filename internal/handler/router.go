package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/odinbook/pkg/middleware"
	"seungpyo.lee/odinbook/pkg/ratelimit"
)

// Router bundles everything the HTTP surface needs.
type Router struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Posts    *PostHandler
	Health   *HealthHandler
	Verifier middleware.TokenVerifier
	// AuthLimiter throttles the credential endpoints; nil disables it.
	AuthLimiter ratelimit.Limiter
	Log         *slog.Logger
}

func (rt Router) Setup() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(rt.Log), middleware.Recovery(rt.Log))

	api := r.Group("/api")
	api.GET("/health", rt.Health.Health)

	auth := api.Group("/auth")
	if rt.AuthLimiter != nil {
		auth.Use(middleware.RateLimitMiddleware(rt.AuthLimiter, rt.Log))
	}
	auth.POST("/register", rt.Auth.Register)
	auth.POST("/login", rt.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(rt.Verifier))
	{
		protected.GET("/users/me", rt.Users.GetMe)
		protected.GET("/users", rt.Users.ListUsers)
		protected.GET("/posts", rt.Posts.GetPosts)
		protected.POST("/posts", rt.Posts.CreatePost)
		protected.POST("/posts/:postId/like", rt.Posts.ToggleLike)
	}
	return r
}
