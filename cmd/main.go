package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"seungpyo.lee/odinbook/internal/config"
	"seungpyo.lee/odinbook/internal/domain"
	"seungpyo.lee/odinbook/internal/handler"
	"seungpyo.lee/odinbook/internal/repository/gormrepo"
	"seungpyo.lee/odinbook/internal/repository/memory"
	"seungpyo.lee/odinbook/internal/seed"
	"seungpyo.lee/odinbook/internal/service"
	"seungpyo.lee/odinbook/pkg/jwt"
	"seungpyo.lee/odinbook/pkg/logger"
	"seungpyo.lee/odinbook/pkg/ratelimit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type stores struct {
	users domain.UserRepository
	posts domain.PostRepository
	likes domain.LikeRepository
	close func() error
}

func openStores(cfg *config.AppConfig) (*stores, error) {
	switch cfg.StoreDriver {
	case "", "memory":
		return &stores{
			users: memory.NewUserRepository(),
			posts: memory.NewPostRepository(),
			likes: memory.NewLikeRepository(),
			close: func() error { return nil },
		}, nil
	case gormrepo.DriverSQLite, gormrepo.DriverPostgres:
		db, err := gormrepo.OpenDatabase(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		return &stores{
			users: gormrepo.NewUserRepository(db),
			posts: gormrepo.NewPostRepository(db),
			likes: gormrepo.NewLikeRepository(db),
			close: sqlDB.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s", cfg.StoreDriver)
	}
}

// authLimiter prefers the shared Redis window and falls back to per-process buckets.
func authLimiter(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (ratelimit.Limiter, func()) {
	if cfg.RedisURL != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		rdb, err := ratelimit.Connect(pingCtx, cfg.RedisURL, cfg.RedisPassword)
		cancel()
		if err == nil {
			log.Info("rate limiting through redis", "addr", cfg.RedisURL)
			window := ratelimit.WindowFor(cfg.RateLimitRPS, cfg.RateLimitBurst)
			return ratelimit.NewRedisLimiter(rdb, cfg.RateLimitBurst, window), func() { _ = rdb.Close() }
		}
		log.Warn("failed to connect to redis, using in-process rate limiter", "error", err)
	}
	l := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, log)
	l.StartCleanup(ctx, 10*time.Minute)
	return l, func() {}
}

func Run(ctx context.Context) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	slog.SetDefault(log)

	st, err := openStores(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	if cfg.SeedDemoData {
		seeded, err := seed.Run(ctx, st.users, st.posts, log)
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		if seeded {
			log.Info("demo login available", "email", "john@example.com", "password", seed.DemoPassword)
		}
	}

	tokenManager := jwt.NewTokenManager(cfg.JWTSecretKey, cfg.TokenTTL())
	authService := service.NewAuthService(st.users, tokenManager, log)
	userService := service.NewUserService(st.users)
	postService := service.NewPostService(st.posts, cfg.MaxPostLength, log)
	likeService := service.NewLikeService(st.posts, st.likes, log)
	feedService := service.NewFeedService(st.posts, st.users, st.likes)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	limiter, closeLimiter := authLimiter(workerCtx, cfg, log)
	defer closeLimiter()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handler.Router{
		Auth:        handler.NewAuthHandler(authService, log),
		Users:       handler.NewUserHandler(userService, log),
		Posts:       handler.NewPostHandler(postService, likeService, feedService, log),
		Health:      handler.NewHealthHandler(st.users, st.posts, log),
		Verifier:    authService,
		AuthLimiter: limiter,
		Log:         log,
	}.Setup()

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.ServerPort, "env", cfg.AppEnv, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exiting")
	return nil
}
