package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed to the components that need it.
type Config struct {
	Port            string
	APIKey          string
	GinMode         string
	LogLevel        string
	LogFormat       string
	MaxBodyBytes    int64
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("max_body_bytes", 25<<20)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("shutdown_timeout", "5s")

	cfg := &Config{
		Port:            strings.TrimSpace(v.GetString("port")),
		APIKey:          v.GetString("api_key"),
		GinMode:         v.GetString("gin_mode"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		MaxBodyBytes:    v.GetInt64("max_body_bytes"),
		AllowedOrigins:  splitList(v.GetString("cors_allowed_origins")),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}

	// Validate required environment variables
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable is required")
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a TCP port number, got %q", cfg.Port)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
