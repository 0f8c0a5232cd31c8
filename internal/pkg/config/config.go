package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds how long a stored session survives without a
	// logout. Zero disables the expiry.
	SessionTTL time.Duration `env:"SESSION_TTL, default=12h"`

	Upstreams UpstreamConfig
	Redis     RedisConfig
}

// UpstreamConfig holds the base URLs of the four services the gateway
// fronts, plus the shared request timeout.
type UpstreamConfig struct {
	AuthBaseURL     string `env:"AUTH_BASE_URL,     default=http://localhost:8001"`
	EmployeeBaseURL string `env:"EMPLOYEE_BASE_URL, default=http://localhost:8002"`
	ProductBaseURL  string `env:"PRODUCT_BASE_URL,  default=http://localhost:8003"`
	DiscountBaseURL string `env:"DISCOUNT_BASE_URL, default=http://localhost:8004"`

	Timeout time.Duration `env:"UPSTREAM_TIMEOUT, default=10s"`

	// PlaceholderImageURL substitutes for missing or unusable record images.
	PlaceholderImageURL string `env:"PLACEHOLDER_IMAGE_URL, default=https://via.placeholder.com/150"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
