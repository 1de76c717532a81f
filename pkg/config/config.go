package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrMissingConfig is returned when a required configuration key is not set.
var ErrMissingConfig = errors.New("critical config missing")

type GlobalConfig struct {
	AppEnv     string
	ServerPort string
	LogLevel   string
	TokenTTL   int // in hours
}

// SetGlobalDefaults registers the defaults shared by every entry point.
func SetGlobalDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("TOKEN_TTL_HOURS", 7*24)
}

func LoadGlobalConfig(v *viper.Viper) GlobalConfig {
	cfg := GlobalConfig{
		AppEnv:     v.GetString("APP_ENV"),
		ServerPort: v.GetString("SERVER_PORT"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		TokenTTL:   v.GetInt("TOKEN_TTL_HOURS"),
	}
	if cfg.LogLevel == "" {
		if cfg.IsProduction() {
			cfg.LogLevel = "info"
		} else {
			cfg.LogLevel = "debug"
		}
	}
	return cfg
}

func (c GlobalConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// RequireString retrieves the value of key, failing when it is unset or empty.
func RequireString(v *viper.Viper, key string) (string, error) {
	value := v.GetString(key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingConfig, key)
	}
	return value, nil
}
