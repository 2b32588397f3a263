package config

import (
	"fmt"
	"time"
)

// Insecure defaults that are only acceptable in the development profile.
const (
	devTokenSecret   = "dev-secret-change-in-production"
	devAdminPassword = "admin123"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"store.db"`

	Stripe   Stripe   `envPrefix:"STRIPE_"`
	Download Download `envPrefix:"DOWNLOAD_"`
	Assets   Assets   `envPrefix:"ASSET_"`
	Brevo    Brevo    `envPrefix:"BREVO_"`
	Admin    Admin    `envPrefix:"ADMIN_"`
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type Download struct {
	TokenSecret  string        `env:"TOKEN_SECRET" envDefault:"dev-secret-change-in-production"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	MaxDownloads int           `env:"MAX_DOWNLOADS" envDefault:"10"`
}

// Assets selects the store backing the .glb files: a local directory by
// default, S3/MinIO when a bucket is configured.
type Assets struct {
	Dir          string `env:"DIR" envDefault:"./public"`
	S3Bucket     string `env:"S3_BUCKET"`
	S3Region     string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint   string `env:"S3_ENDPOINT"`
	S3AccessKey  string `env:"S3_ACCESS_KEY"`
	S3SecretKey  string `env:"S3_SECRET_KEY"`
	UsePathStyle bool   `env:"S3_PATH_STYLE" envDefault:"true"`
}

type Brevo struct {
	APIKey    string `env:"API_KEY"`
	FromEmail string `env:"FROM_EMAIL" envDefault:"downloads@antique-models.example"`
	FromName  string `env:"FROM_NAME" envDefault:"Antique Models Store"`
}

type Admin struct {
	Password string `env:"PASSWORD" envDefault:"admin123"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsDevelopment() bool {
	return e.Name == "development"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Validate rejects missing or placeholder security material. Outside the
// development profile the process must refuse to start with defaults.
func (c *Config) Validate() error {
	if c.Download.MaxDownloads <= 0 {
		return fmt.Errorf("DOWNLOAD_MAX_DOWNLOADS must be positive")
	}
	if c.Download.TokenTTL <= 0 {
		return fmt.Errorf("DOWNLOAD_TOKEN_TTL must be positive")
	}

	if c.Environment.IsDevelopment() {
		return nil
	}

	if c.Download.TokenSecret == "" || c.Download.TokenSecret == devTokenSecret {
		return fmt.Errorf("DOWNLOAD_TOKEN_SECRET must be set outside development")
	}
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY must be set outside development")
	}
	if c.Stripe.WebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET must be set outside development")
	}
	if c.Admin.Password == "" || c.Admin.Password == devAdminPassword {
		return fmt.Errorf("ADMIN_PASSWORD must be set outside development")
	}

	return nil
}
