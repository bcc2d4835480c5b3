package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muskiz/beach-handball/models"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("ADMIN_PASSWORD", "x")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD", "arena")
	for _, k := range []string{"SERVER_PORT", "CORS_ORIGINS", "FEE_ELITE", "LIMIT_AMATEUR", "LOGIN_RATE_PER_MINUTE", "R2_ACCOUNT_ID", "SMTP_HOST", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 250, cfg.Fees[models.DivisionElite])
	assert.Equal(t, 16, cfg.Limits[models.DivisionAmateur])
	assert.Equal(t, 12, cfg.Limits[models.DivisionJuvenile])
	assert.False(t, cfg.R2Enabled())
	assert.False(t, cfg.SMTPEnabled())
	assert.False(t, cfg.TrustProxy)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD", "arena")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LIMIT_ELITE", "4")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 4, cfg.Limits[models.DivisionElite])
	assert.True(t, cfg.TrustProxy)

	t.Setenv("TRUST_PROXY", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD", "arena")

	t.Setenv("SERVER_PORT", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SERVER_PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}
