package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	return &Config{
		Environment: Environment{Name: "development"},
		Download: Download{
			TokenSecret:  devTokenSecret,
			TokenTTL:     24 * time.Hour,
			MaxDownloads: 10,
		},
		Admin: Admin{Password: devAdminPassword},
	}
}

func TestValidate_DevelopmentAllowsDefaults(t *testing.T) {
	cfg := baseConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_ProductionRejectsDefaultSecrets(t *testing.T) {
	cfg := baseConfig()
	cfg.Environment.Name = "production"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOWNLOAD_TOKEN_SECRET")
}

func TestValidate_ProductionRequiresStripeSecrets(t *testing.T) {
	cfg := baseConfig()
	cfg.Environment.Name = "production"
	cfg.Download.TokenSecret = "real-secret"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")

	cfg.Stripe.SecretKey = "sk_live_x"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_WEBHOOK_SECRET")

	cfg.Stripe.WebhookSecret = "whsec_x"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")

	cfg.Admin.Password = "not-the-default"
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	cfg := baseConfig()
	cfg.Download.MaxDownloads = 0
	require.Error(t, cfg.Validate())

	cfg = baseConfig()
	cfg.Download.TokenTTL = 0
	require.Error(t, cfg.Validate())
}
