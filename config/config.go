// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Every value has a
// development-friendly default; nothing here is required for the API
// contract itself.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	Environment    string   `env:"GO_ENV" envDefault:"development"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// Email settings for the newsletter welcome mail. Provider "ses" sends
	// through AWS SES; anything else is a no-op.
	EmailProvider    string `env:"EMAIL_PROVIDER" envDefault:"noop"`
	EmailFromAddress string `env:"EMAIL_FROM_ADDRESS" envDefault:"no-reply@eventlane.local"`
	EmailFromName    string `env:"EMAIL_FROM_NAME" envDefault:"Eventlane"`
	SESRegion        string `env:"AWS_SES_REGION" envDefault:"us-east-1"`
	SESAccessKeyID   string `env:"AWS_SES_ACCESS_KEY_ID"`
	SESSecretKey     string `env:"AWS_SES_SECRET_ACCESS_KEY"`
}

// Load reads configuration from environment variables, pulling in a .env
// file first outside production. A missing .env is not an error; production
// relies on real environment variables.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
