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

	// JWTSecret signs session tokens; ProductKeySecret is folded into
	// every product key. Both must be set.
	JWTSecret        string `env:"JWT_SECRET,required"`
	ProductKeySecret string `env:"PRODUCT_KEY_SECRET,required"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo        MongoConfig
	Redis        RedisConfig
	ImageCleanup ImageCleanupConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=realtor"`
}

// RedisConfig points at the inquiry dedup store. REDIS_URL wins over the
// discrete settings when present.
type RedisConfig struct {
	URL           string        `env:"REDIS_URL"`
	Addr          string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB,       default=0"`
	InquiryWindow time.Duration `env:"INQUIRY_WINDOW, default=10m"`
}

type ImageCleanupConfig struct {
	Workers   int    `env:"IMAGE_CLEANUP_WORKERS, default=4"`
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
