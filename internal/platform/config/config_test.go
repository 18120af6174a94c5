package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, []byte("s3cret"), cfg.JWTKey)
	assert.Equal(t, time.Hour, cfg.JWTExp)
	assert.Contains(t, cfg.DBConnStr, "dbname=care_connect_db")
	assert.Contains(t, cfg.DBConnStr, "sslmode=disable")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TOKEN_TTL_MINUTES", "15")
	t.Setenv("API_PORT", "9090")
	t.Setenv("DB_NAME", "other_db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.APIPort)
	assert.Equal(t, 15*time.Minute, cfg.JWTExp)
	assert.Contains(t, cfg.DBConnStr, "dbname=other_db")
}
