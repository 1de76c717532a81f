package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"seungpyo.lee/odinbook/pkg/config"
)

// AppConfig extends GlobalConfig with the feed service specific configuration.
type AppConfig struct {
	config.GlobalConfig
	JWTSecretKey   string
	StoreDriver    string
	DatabaseURL    string
	RedisURL       string
	RedisPassword  string
	RateLimitRPS   float64
	RateLimitBurst int
	SeedDemoData   bool
	MaxPostLength  int
}

func LoadAppConfig() (*AppConfig, error) {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, reading from environment variables")
	}

	v := viper.New()
	config.SetGlobalDefaults(v)
	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("MAX_POST_LENGTH", 1000)
	v.AutomaticEnv()

	secret, err := config.RequireString(v, "JWT_SECRET_KEY")
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		GlobalConfig:   config.LoadGlobalConfig(v),
		JWTSecretKey:   secret,
		StoreDriver:    v.GetString("STORE_DRIVER"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RedisURL:       v.GetString("REDIS_URL"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		SeedDemoData:   v.GetBool("SEED_DEMO_DATA"),
		MaxPostLength:  v.GetInt("MAX_POST_LENGTH"),
	}, nil
}

// TokenTTL is how long an issued session token stays valid.
func (c *AppConfig) TokenTTL() time.Duration {
	return time.Duration(c.GlobalConfig.TokenTTL) * time.Hour
}
