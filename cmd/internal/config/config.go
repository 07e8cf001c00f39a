// Package config loads process configuration from the environment.
// Required values have no fallback: startup fails fast when they are
// absent instead of running on baked-in credentials.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./database.db"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Photo host (S3 or compatible).
	S3Bucket       string        `env:"S3_BUCKET,required"`
	PhotoBaseURL   string        `env:"PHOTO_BASE_URL" envDefault:""`
	UploadTimeout  time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"15s"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
