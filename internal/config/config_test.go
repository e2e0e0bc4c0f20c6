package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")

	cfg := Load()

	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenExpire)
	require.Equal(t, "8080", cfg.ServerPort)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("LOG_FILE", "/tmp/hr.log")

	cfg := Load()

	require.Equal(t, "mysql", cfg.DBDriver)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenExpire)
	require.Equal(t, "/tmp/hr.log", cfg.LogFile)
}

func TestLoad_InvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := Load()

	require.Equal(t, 30*time.Minute, cfg.AccessTokenExpire)
}
