package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SPECDASH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/obra")
	t.Setenv("SPECDASH_PAGINATION_PAGE_SIZE", "5")
	t.Setenv("SPECDASH_LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "segredo", cfg.JWT.Secret)
	assert.Equal(t, "postgres://u:p@db:5432/obra", cfg.Database.URL)
	assert.Equal(t, 5, cfg.Pagination.PageSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpire)
	assert.Equal(t, 72*time.Hour, cfg.Redis.DraftTTL)
}

func TestPrefixedSecretWins(t *testing.T) {
	t.Setenv("JWT_SECRET", "plain")
	t.Setenv("SPECDASH_JWT_SECRET", "prefixed")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.JWT.Secret)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SPECDASH_TEST_VALUE", "x")
	assert.Equal(t, "x", GetEnv("SPECDASH_TEST_VALUE", "y"))
	assert.Equal(t, "y", GetEnv("SPECDASH_TEST_MISSING", "y"))
}

func TestLoadClient(t *testing.T) {
	t.Setenv("SPECDASH_API_URL", "https://obras.example.com/")
	t.Setenv("SPECDASH_TIMEOUT", "5s")

	v := viper.New()
	SetClientDefaults(v)
	cfg, err := LoadClient(v)
	require.NoError(t, err)
	assert.Equal(t, "https://obras.example.com", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Empty(t, cfg.TokenFile)
}
