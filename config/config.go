// Package config loads service configuration from the environment.
// main loads .env first; everything else goes through envconfig tags.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type Config struct {
	Environment Environment `default:"development"`
	Port        string      `default:"8080"`

	MongoURI      string `split_words:"true" required:"true"`
	MongoDatabase string `split_words:"true" default:"dimavelo"`
	RedisURL      string `split_words:"true" required:"true"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// The one required external key: the image-hosting API.
	ImageHostKey string `split_words:"true" required:"true"`
	ImageHostURL string `split_words:"true" default:"https://api.imgbb.com/1/upload"`

	// Shop number the checkout deep link targets.
	WhatsappPhone string `split_words:"true" required:"true"`

	AllowedOrigins []string `split_words:"true" default:"*"`
}

// Load reads DIMAVELO_* variables into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("dimavelo", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (e Environment) IsProduction() bool {
	return e == Production
}
