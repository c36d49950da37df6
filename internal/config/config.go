package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment
// variables. It is built once at startup and passed by injection.
type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	MySQLDSN   string `env:"MYSQL_DSN,   default=user:password@tcp(localhost:3306)/onboard?charset=utf8mb4&parseTime=True&loc=Local"`
	JWTSecret  string `env:"JWT_SECRET,  default=change-me"`
	BcryptCost int    `env:"BCRYPT_COST, default=12"`

	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// RedisConfig configures the Redis connection used for rate-limit counters.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig configures the per-IP request limiters.
type RateLimitConfig struct {
	GlobalLimit  int           `env:"RATE_LIMIT_GLOBAL,        default=300"`
	GlobalWindow time.Duration `env:"RATE_LIMIT_GLOBAL_WINDOW, default=1m"`
	AuthLimit    int           `env:"RATE_LIMIT_AUTH,          default=20"`
	AuthWindow   time.Duration `env:"RATE_LIMIT_AUTH_WINDOW,   default=15m"`
}

// Development reports whether the service runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
