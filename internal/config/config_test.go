package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hillside")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 3*time.Second, cfg.NoticeTTL)
	assert.Equal(t, 15*time.Minute, cfg.ReportURLExpiry)
	assert.True(t, cfg.Capital.Equal(decimal.NewFromInt(350_000_000)))
	assert.Equal(t, "HILLSIDE STUDIO LLC", cfg.CompanyName)
	assert.False(t, cfg.S3.Enabled())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hillside")
	t.Setenv("NOTICE_TTL", "5s")
	t.Setenv("LEDGER_CAPITAL", "500000000")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("S3_BUCKET", "hillside-reports")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.NoticeTTL)
	assert.True(t, cfg.Capital.Equal(decimal.NewFromInt(500_000_000)))
	assert.False(t, cfg.RunMigrations)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}},
		{"bad duration", map[string]string{"NOTICE_TTL": "soon"}},
		{"bad rate", map[string]string{"RATE_LIMIT_PER_MINUTE": "lots"}},
		{"zero rate", map[string]string{"RATE_LIMIT_BURST": "0"}},
		{"bad capital", map[string]string{"LEDGER_CAPITAL": "abc"}},
		{"half auth config", map[string]string{"AUTH0_DOMAIN": "tenant.auth0.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/hillside")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
